package separation

import (
	"context"
	"fmt"

	"github.com/sitarlab/stemsep/algorithms/common"
	"github.com/sitarlab/stemsep/algorithms/medfilt"
	"github.com/sitarlab/stemsep/algorithms/spectral"
	"github.com/sitarlab/stemsep/algorithms/windowing"
	"github.com/sitarlab/stemsep/logging"
)

// HPSS separates a mixture by exploiting the anisotropy of its spectrogram:
// harmonic energy is continuous along time, percussive energy along
// frequency. Two median-filtered magnitude views are turned into masks that
// are applied to the original complex spectrogram (phase untouched) and
// inverted back to two stems.
//
// A run is a pure function of its inputs; the same HPSS value can be used
// from any number of goroutines concurrently.
type HPSS struct {
	config Config
	stft   *spectral.STFT
	istft  *spectral.ISTFT
	logger logging.Logger
}

// NewHPSS creates an HPSS separator, validating the configuration eagerly
func NewHPSS(config Config) (*HPSS, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &HPSS{
		config: config,
		stft:   spectral.NewSTFT(),
		istft:  spectral.NewISTFT(),
		logger: logging.WithFields(logging.Fields{"component": "hpss"}),
	}, nil
}

// Config returns the separator's configuration
func (h *HPSS) Config() Config {
	return h.config
}

// Separate splits samples into a harmonic and a percussive stem. In soft
// mode the stems sum back to the input within the reconstruction error of
// the transform pair alone.
func (h *HPSS) Separate(ctx context.Context, samples []float64, sampleRate int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	window, err := windowing.New(h.config.WindowType, h.config.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	spec, err := h.stft.Compute(samples, h.config.WindowSize, h.config.HopSize, sampleRate, window)
	if err != nil {
		return nil, fmt.Errorf("forward transform: %w", err)
	}

	h.logger.Debug("spectrogram computed", logging.Fields{
		"frames": spec.TimeFrames,
		"bins":   spec.FreqBins,
	})

	// Two independently derived magnitude copies: each filtering pass must
	// see the original magnitudes, not the other pass's output.
	harmEnh, err := medfilt.FilterColumns(spec.Magnitude(), h.config.FilterLengthTime)
	if err != nil {
		return nil, fmt.Errorf("%w: harmonic enhancement: %v", ErrInvalidParameter, err)
	}

	percEnh, err := medfilt.FilterRows(spec.Magnitude(), h.config.FilterLengthFreq)
	if err != nil {
		return nil, fmt.Errorf("%w: percussive enhancement: %v", ErrInvalidParameter, err)
	}

	var harmMask, percMask [][]float64
	if h.config.Mode == ModeBinary {
		harmMask, percMask = binaryMasks(harmEnh, percEnh)
	} else {
		harmMask, percMask = softMasks(harmEnh, percEnh, h.config.Power)
	}

	harmonic, err := h.synthesize(spec, harmMask)
	if err != nil {
		return nil, fmt.Errorf("harmonic stem: %w", err)
	}

	percussive, err := h.synthesize(spec, percMask)
	if err != nil {
		return nil, fmt.Errorf("percussive stem: %w", err)
	}

	return &Result{
		Harmonic:   common.PeakNormalize(harmonic),
		Percussive: common.PeakNormalize(percussive),
		SampleRate: sampleRate,
	}, nil
}

// synthesize applies a mask to the spectrogram and inverts the result
func (h *HPSS) synthesize(spec *spectral.Spectrogram, mask [][]float64) ([]float64, error) {
	masked, err := spec.ApplyMask(mask)
	if err != nil {
		return nil, err
	}

	return h.istft.Compute(masked)
}
