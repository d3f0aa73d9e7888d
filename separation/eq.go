package separation

import (
	"math"

	"github.com/sitarlab/stemsep/algorithms/filters"
)

// CleanHarmonic attenuates percussive bleed left in a harmonic stem by
// running a band-stop notch over [lowHz, highHz]. Drum energy tends to
// concentrate in the bass and around sharp transients, and a notch across
// that overlap region cleans the sustained stem audibly.
//
// Two cascaded biquad passes give an order-4 rejection. Non-finite samples
// produced by extreme filter settings are zeroed.
func CleanHarmonic(stem []float64, sampleRate int, lowHz, highHz float64) ([]float64, error) {
	notch, err := filters.NewBandstopFromBand(sampleRate, lowHz, highHz)
	if err != nil {
		return nil, err
	}

	out := notch.ProcessBuffer(stem)
	notch.Reset()
	out = notch.ProcessBuffer(out)

	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = 0
		}
	}

	return out, nil
}
