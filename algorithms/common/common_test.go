package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeakNormalize(t *testing.T) {
	loud := []float64{0.5, -2.0, 1.5}
	normalized := PeakNormalize(loud)

	assert.InDelta(t, 1.0, Peak(normalized), 1e-12)
	assert.InDelta(t, 0.25, normalized[0], 1e-12)
	assert.InDelta(t, -1.0, normalized[1], 1e-12)

	// Input untouched
	assert.Equal(t, []float64{0.5, -2.0, 1.5}, loud)
}

func TestPeakNormalizeIdempotent(t *testing.T) {
	signal := []float64{0.5, -3.0, 2.0, -0.1}

	once := PeakNormalize(signal)
	twice := PeakNormalize(once)

	assert.Equal(t, once, twice)
}

func TestPeakNormalizeLeavesQuietSignals(t *testing.T) {
	quiet := []float64{0.1, -0.3, 0.2}
	assert.Equal(t, quiet, PeakNormalize(quiet))

	silence := []float64{0, 0, 0, 0}
	assert.Equal(t, silence, PeakNormalize(silence))
}

func TestRMS(t *testing.T) {
	assert.Equal(t, 0.0, RMS(nil))
	assert.InDelta(t, 2.0, RMS([]float64{2, -2, 2, -2}), 1e-12)

	// Full-scale sine has RMS 1/sqrt(2)
	n := 44100
	sine := make([]float64, n)
	for i := range sine {
		sine[i] = math.Sin(2 * math.Pi * 441 * float64(i) / float64(n))
	}
	assert.InDelta(t, 1.0/math.Sqrt2, RMS(sine), 1e-3)
}

func TestComputeSignalStats(t *testing.T) {
	signal := []float64{0.5, -0.8, 0.2, 0}
	stats := ComputeSignalStats(signal, 4)

	assert.Equal(t, 4, stats.Samples)
	assert.InDelta(t, 1.0, stats.Duration, 1e-12)
	assert.InDelta(t, 0.8, stats.Peak, 1e-12)
	assert.Greater(t, stats.RMS, 0.0)
}

func TestAmplitudeToDB(t *testing.T) {
	assert.InDelta(t, 0.0, AmplitudeToDB(1.0, 1.0), 1e-12)
	assert.InDelta(t, -6.0206, AmplitudeToDB(0.5, 1.0), 1e-3)
	assert.InDelta(t, 20.0, AmplitudeToDB(10.0, 1.0), 1e-9)

	// Silence stays finite
	assert.Equal(t, -120.0, AmplitudeToDB(0, 1.0))
}
