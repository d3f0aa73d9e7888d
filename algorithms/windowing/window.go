package windowing

import "fmt"

// Window is the analysis/synthesis taper applied to each short-time frame.
// Implementations generate their coefficients once at construction.
type Window interface {
	// Apply windows a signal into a new slice
	Apply(signal []float64) []float64

	// ApplyInPlace windows a signal in place
	ApplyInPlace(signal []float64) error

	// Coefficients returns a copy of the window coefficients
	Coefficients() []float64

	// Size returns the window length in samples
	Size() int

	// Type returns the window type name
	Type() string
}

// New creates a window by name. Windows are periodic (DFT-even), which is
// the form required for overlap-add reconstruction.
func New(name string, size int) (Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", size)
	}

	switch name {
	case "hann", "":
		return NewHann(size, false), nil
	case "hamming":
		return NewHamming(size, false), nil
	default:
		return nil, fmt.Errorf("unknown window type %q", name)
	}
}
