package spectral

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/sitarlab/stemsep/algorithms/windowing"
	"github.com/sitarlab/stemsep/logging"
)

// Sentinel errors for transform parameter validation
var (
	ErrInvalidParameter = errors.New("invalid transform parameter")
	ErrEmptyInput       = errors.New("empty input signal")
)

// STFT provides an invertible Short-Time Fourier Transform. Frames are
// centered: the signal is zero-padded by windowSize/2 on both sides so that
// frame t is centered on sample t*hopSize, and ISTFT trims the same padding.
type STFT struct {
	fft    *FFT
	logger logging.Logger
}

// NewSTFT creates a new STFT calculator
func NewSTFT() *STFT {
	return &STFT{
		fft:    NewFFT(),
		logger: logging.WithFields(logging.Fields{"component": "stft"}),
	}
}

// NumFrames returns the frame count the transform produces for a signal of
// the given length: 1 + floor(signalLen/hopSize) with centered padding.
func NumFrames(signalLen, windowSize, hopSize int) int {
	padded := signalLen + 2*(windowSize/2)
	if padded < windowSize {
		return 0
	}
	return 1 + (padded-windowSize)/hopSize
}

// ValidateParams checks transform parameters eagerly, before any work
func ValidateParams(windowSize, hopSize int) error {
	if windowSize <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %d", ErrInvalidParameter, windowSize)
	}
	if hopSize <= 0 {
		return fmt.Errorf("%w: hop size must be positive, got %d", ErrInvalidParameter, hopSize)
	}
	if hopSize > windowSize {
		return fmt.Errorf("%w: hop size (%d) exceeds window size (%d)", ErrInvalidParameter, hopSize, windowSize)
	}
	return nil
}

// Compute computes the forward transform of a real signal
func (s *STFT) Compute(signal []float64, windowSize, hopSize, sampleRate int, window windowing.Window) (*Spectrogram, error) {
	if err := ValidateParams(windowSize, hopSize); err != nil {
		return nil, err
	}
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if window.Size() != windowSize {
		return nil, fmt.Errorf("%w: window length (%d) doesn't match window size (%d)",
			ErrInvalidParameter, window.Size(), windowSize)
	}

	// Centered framing: pad half a window of zeros on each side
	half := windowSize / 2
	padded := make([]float64, len(signal)+2*half)
	copy(padded[half:], signal)

	numFrames := NumFrames(len(signal), windowSize, hopSize)
	freqBins := windowSize/2 + 1

	coeffs := window.Coefficients()

	data := make([][]complex128, numFrames)
	for t := 0; t < numFrames; t++ {
		data[t] = make([]complex128, freqBins)
	}

	s.logger.Debug("forward transform", logging.Fields{
		"frames":   numFrames,
		"bins":     freqBins,
		"window":   window.Type(),
		"hop_size": hopSize,
	})

	numWorkers := optimalWorkerCount(numFrames)

	jobs := make(chan int, numFrames)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Per-worker frame buffer
			frame := make([]float64, windowSize)

			for t := range jobs {
				start := t * hopSize
				for i := 0; i < windowSize; i++ {
					frame[i] = padded[start+i] * coeffs[i]
				}

				spectrum := s.fft.ComputeReal(frame)
				copy(data[t], spectrum[:freqBins])
			}
		}()
	}

	for t := 0; t < numFrames; t++ {
		jobs <- t
	}
	close(jobs)
	wg.Wait()

	return &Spectrogram{
		Data:           data,
		TimeFrames:     numFrames,
		FreqBins:       freqBins,
		SampleRate:     sampleRate,
		WindowSize:     windowSize,
		HopSize:        hopSize,
		WindowType:     window.Type(),
		OriginalLength: len(signal),
		FreqResolution: float64(sampleRate) / float64(windowSize),
		TimeResolution: float64(hopSize) / float64(sampleRate),
	}, nil
}

// optimalWorkerCount sizes the frame worker pool to the workload
func optimalWorkerCount(numFrames int) int {
	numCPU := runtime.NumCPU()

	if numFrames < 100 {
		return max(1, min(numCPU/2, numFrames))
	}
	if numFrames < 1000 {
		return min(numCPU, 8)
	}
	return numCPU
}
