package separation

import (
	"math"
)

// maskEpsilon is the threshold under which a bin's combined enhancement
// weight counts as silence; such bins get an even 0.5/0.5 split in soft
// mode instead of a 0/0 division.
const maskEpsilon = 1e-10

// softMasks derives Wiener-like fractional masks from the two enhanced
// magnitude views: harmonic = h^p / (h^p + p^p). The percussive mask is
// computed as the complement, so the two sum to exactly 1.0 at every bin.
func softMasks(harmEnh, percEnh [][]float64, power float64) (harmMask, percMask [][]float64) {
	harmMask = make([][]float64, len(harmEnh))
	percMask = make([][]float64, len(harmEnh))

	for t := range harmEnh {
		harmMask[t] = make([]float64, len(harmEnh[t]))
		percMask[t] = make([]float64, len(harmEnh[t]))

		for f := range harmEnh[t] {
			hw := math.Pow(harmEnh[t][f], power)
			pw := math.Pow(percEnh[t][f], power)

			denom := hw + pw
			if denom <= maskEpsilon {
				harmMask[t][f] = 0.5
				percMask[t][f] = 0.5
				continue
			}

			m := hw / denom
			harmMask[t][f] = m
			percMask[t][f] = 1.0 - m
		}
	}

	return harmMask, percMask
}

// binaryMasks assigns every bin entirely to the stem with the larger
// enhancement. Exact ties, including all-zero bins, go to the harmonic
// stem.
func binaryMasks(harmEnh, percEnh [][]float64) (harmMask, percMask [][]float64) {
	harmMask = make([][]float64, len(harmEnh))
	percMask = make([][]float64, len(harmEnh))

	for t := range harmEnh {
		harmMask[t] = make([]float64, len(harmEnh[t]))
		percMask[t] = make([]float64, len(harmEnh[t]))

		for f := range harmEnh[t] {
			if harmEnh[t][f] >= percEnh[t][f] {
				harmMask[t][f] = 1.0
			} else {
				percMask[t][f] = 1.0
			}
		}
	}

	return harmMask, percMask
}
