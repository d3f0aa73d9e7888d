package spectral

import (
	"fmt"

	"github.com/sitarlab/stemsep/algorithms/windowing"
	"github.com/sitarlab/stemsep/logging"
)

// windowFloor guards the overlap-gain division where the squared-window sum
// vanishes (frame edges at very large hops)
const windowFloor = 1e-12

// ISTFT reconstructs a time-domain signal from a Spectrogram by overlap-add
// with the matching synthesis window. The overlap gain is compensated by
// normalizing with the per-sample sum of squared windows, which makes the
// round trip through STFT exact to floating-point precision when no masking
// was applied.
type ISTFT struct {
	fft    *FFT
	logger logging.Logger
}

// NewISTFT creates a new inverse transform calculator
func NewISTFT() *ISTFT {
	return &ISTFT{
		fft:    NewFFT(),
		logger: logging.WithFields(logging.Fields{"component": "istft"}),
	}
}

// Compute inverts a spectrogram to a signal of exactly OriginalLength samples
func (s *ISTFT) Compute(spec *Spectrogram) ([]float64, error) {
	if err := ValidateParams(spec.WindowSize, spec.HopSize); err != nil {
		return nil, err
	}
	if spec.TimeFrames == 0 || len(spec.Data) != spec.TimeFrames {
		return nil, fmt.Errorf("%w: spectrogram has no frame data", ErrInvalidParameter)
	}
	if expected := NumFrames(spec.OriginalLength, spec.WindowSize, spec.HopSize); spec.TimeFrames != expected {
		return nil, fmt.Errorf("%w: spectrogram has %d frames, parameters imply %d",
			ErrInvalidParameter, spec.TimeFrames, expected)
	}
	expectedBins := spec.WindowSize/2 + 1
	if spec.FreqBins != expectedBins {
		return nil, fmt.Errorf("%w: spectrogram has %d bins, window size %d requires %d",
			ErrInvalidParameter, spec.FreqBins, spec.WindowSize, expectedBins)
	}

	window, err := windowing.New(spec.WindowType, spec.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	coeffs := window.Coefficients()

	half := spec.WindowSize / 2
	paddedLen := spec.OriginalLength + 2*half

	// Overlap-add accumulators: synthesized signal and squared-window gain
	acc := make([]float64, paddedLen+spec.WindowSize)
	windowSum := make([]float64, paddedLen+spec.WindowSize)

	s.logger.Debug("inverse transform", logging.Fields{
		"frames":  spec.TimeFrames,
		"bins":    spec.FreqBins,
		"samples": spec.OriginalLength,
	})

	for t := 0; t < spec.TimeFrames; t++ {
		if len(spec.Data[t]) != spec.FreqBins {
			return nil, fmt.Errorf("%w: frame %d has %d bins, expected %d",
				ErrInvalidParameter, t, len(spec.Data[t]), spec.FreqBins)
		}

		full := ExpandHalfSpectrum(spec.Data[t], spec.WindowSize)
		frame := s.fft.ComputeInverseReal(full)

		start := t * spec.HopSize
		for i := 0; i < spec.WindowSize; i++ {
			acc[start+i] += frame[i] * coeffs[i]
			windowSum[start+i] += coeffs[i] * coeffs[i]
		}
	}

	// Compensate the overlap gain, then trim the centering pad
	signal := make([]float64, spec.OriginalLength)
	for i := range signal {
		if windowSum[half+i] > windowFloor {
			signal[i] = acc[half+i] / windowSum[half+i]
		}
	}

	return signal, nil
}
