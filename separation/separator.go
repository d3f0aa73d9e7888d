package separation

import (
	"context"
)

// Result holds the two reconstructed stems of one separation run. Both
// stems have the same length and sample rate as the input mixture; the
// caller owns them for playback or persistence.
type Result struct {
	Harmonic   []float64 `json:"-"`
	Percussive []float64 `json:"-"`
	SampleRate int       `json:"sample_rate"`
}

// Separator splits a mono mixture into a harmonic and a percussive stem.
// Two implementations exist: HPSS (median-filter masking, deterministic)
// and Neural (delegation to an external learned model). Callers can swap
// one for the other without touching anything else.
type Separator interface {
	Separate(ctx context.Context, samples []float64, sampleRate int) (*Result, error)
}
