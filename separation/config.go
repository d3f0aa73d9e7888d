package separation

import (
	"fmt"
)

// Mode selects how masks are derived from the two enhanced magnitude views
type Mode string

const (
	// ModeSoft produces Wiener-like fractional masks that sum to one per
	// bin, so the stems conserve energy and sum back to the mixture
	ModeSoft Mode = "soft"

	// ModeBinary assigns every bin entirely to one stem; crisper
	// separation with potential artifacts at mask boundaries
	ModeBinary Mode = "binary"
)

// Config holds the separation parameters.
//
// Larger windows trade time resolution for frequency resolution; smaller
// hops smooth reconstruction at more compute. The filter lengths control
// how strongly sustained tones (time axis) and broadband transients
// (frequency axis) are favored, and Power sharpens the mask at the cost of
// artifacts.
type Config struct {
	WindowSize       int     `json:"window_size" mapstructure:"window_size"`
	HopSize          int     `json:"hop_size" mapstructure:"hop_size"`
	FilterLengthTime int     `json:"filter_length_time" mapstructure:"filter_length_time"`
	FilterLengthFreq int     `json:"filter_length_freq" mapstructure:"filter_length_freq"`
	Power            float64 `json:"power" mapstructure:"power"`
	Mode             Mode    `json:"mode" mapstructure:"mode"`
	WindowType       string  `json:"window_type" mapstructure:"window_type"`
}

// DefaultConfig returns the parameters the reference separation uses:
// 2048/512 Hann analysis, median kernels of 31, squared Wiener soft mask.
func DefaultConfig() Config {
	return Config{
		WindowSize:       2048,
		HopSize:          512,
		FilterLengthTime: 31,
		FilterLengthFreq: 31,
		Power:            2.0,
		Mode:             ModeSoft,
		WindowType:       "hann",
	}
}

// Validate checks every parameter eagerly so a bad configuration fails
// before any transform work begins
func (c Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %d", ErrInvalidParameter, c.WindowSize)
	}
	if c.HopSize <= 0 {
		return fmt.Errorf("%w: hop size must be positive, got %d", ErrInvalidParameter, c.HopSize)
	}
	if c.HopSize > c.WindowSize {
		return fmt.Errorf("%w: hop size (%d) exceeds window size (%d)", ErrInvalidParameter, c.HopSize, c.WindowSize)
	}
	if c.FilterLengthTime <= 0 || c.FilterLengthTime%2 == 0 {
		return fmt.Errorf("%w: time filter length must be positive and odd, got %d", ErrInvalidParameter, c.FilterLengthTime)
	}
	if c.FilterLengthFreq <= 0 || c.FilterLengthFreq%2 == 0 {
		return fmt.Errorf("%w: frequency filter length must be positive and odd, got %d", ErrInvalidParameter, c.FilterLengthFreq)
	}
	if c.Power <= 0 {
		return fmt.Errorf("%w: mask power must be positive, got %g", ErrInvalidParameter, c.Power)
	}
	switch c.Mode {
	case ModeSoft, ModeBinary:
	default:
		return fmt.Errorf("%w: unknown mask mode %q", ErrInvalidParameter, c.Mode)
	}
	switch c.WindowType {
	case "", "hann", "hamming":
	default:
		return fmt.Errorf("%w: unknown window type %q", ErrInvalidParameter, c.WindowType)
	}
	return nil
}
