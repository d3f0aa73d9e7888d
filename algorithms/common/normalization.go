package common

import (
	"math"
)

// PeakNormalize scales the signal down so its peak absolute amplitude does
// not exceed 1.0. Signals already within [-1, 1] are returned as an
// unmodified copy, which makes the operation idempotent; an all-zero signal
// is returned unchanged.
func PeakNormalize(signal []float64) []float64 {
	out := make([]float64, len(signal))
	copy(out, signal)

	peak := Peak(signal)
	if peak <= 1.0 {
		return out
	}

	scale := 1.0 / peak
	for i := range out {
		out[i] *= scale
	}

	return out
}

// Peak returns the maximum absolute amplitude of the signal
func Peak(signal []float64) float64 {
	peak := 0.0
	for _, v := range signal {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}
