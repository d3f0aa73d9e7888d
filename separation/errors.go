package separation

import (
	"errors"

	"github.com/sitarlab/stemsep/algorithms/spectral"
)

// Error taxonomy of the separation contract. Parameter and input errors are
// detected eagerly, before any transform work; the pipeline never partially
// succeeds. The model errors only surface from the learned-separation
// variant, where the caller owns retry/backoff policy.
var (
	// ErrInvalidParameter reports bad configuration: non-positive sizes,
	// hop larger than window, even median filter lengths, unknown modes.
	ErrInvalidParameter = spectral.ErrInvalidParameter

	// ErrEmptyInput reports a zero-length input waveform
	ErrEmptyInput = spectral.ErrEmptyInput

	// ErrModelUnavailable reports that the external separation model
	// cannot be reached or is not configured
	ErrModelUnavailable = errors.New("separation model unavailable")

	// ErrResourceExhausted reports that the external separation model
	// refused the request for capacity reasons; retrying may succeed
	ErrResourceExhausted = errors.New("separation model resources exhausted")
)
