package filters

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tone(freq float64, sampleRate, n int) []float64 {
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return signal
}

func rms(signal []float64) float64 {
	sum := 0.0
	for _, v := range signal {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(signal)))
}

func TestNewBandstopFromBandValidation(t *testing.T) {
	_, err := NewBandstopFromBand(44100, 0, 4000)
	assert.Error(t, err)

	_, err = NewBandstopFromBand(44100, 4000, 80)
	assert.Error(t, err)

	_, err = NewBandstopFromBand(44100, 80, 30000)
	assert.Error(t, err, "upper edge above Nyquist must be rejected")
}

func TestNotchAttenuatesCenterFrequency(t *testing.T) {
	sampleRate := 44100
	bf := NewBandstopFilter(sampleRate, 1000, 400)

	in := tone(1000, sampleRate, sampleRate)
	out := bf.ProcessBuffer(in)

	// Skip the transient at the start of the buffer
	settled := out[sampleRate/10:]
	assert.Less(t, rms(settled), 0.1*rms(in), "center frequency should be strongly attenuated")
}

func TestNotchPassesDistantFrequency(t *testing.T) {
	sampleRate := 44100
	bf := NewBandstopFilter(sampleRate, 1000, 400)

	in := tone(8000, sampleRate, sampleRate)
	out := bf.ProcessBuffer(in)

	settled := out[sampleRate/10:]
	assert.InDelta(t, rms(in), rms(settled), 0.1*rms(in), "distant frequency should pass nearly unchanged")
}

func TestFrequencyResponseShape(t *testing.T) {
	bf := NewBandstopFilter(44100, 1000, 400)

	atCenter := bf.GetFrequencyResponse(1000)
	atDC := bf.GetFrequencyResponse(20)
	atHigh := bf.GetFrequencyResponse(10000)

	assert.Less(t, atCenter, 0.05)
	assert.InDelta(t, 1.0, atDC, 0.05)
	assert.InDelta(t, 1.0, atHigh, 0.05)
}

func TestGetParameters(t *testing.T) {
	bf, err := NewBandstopFromBand(44100, 100, 400)
	require.NoError(t, err)

	center, bandwidth, q := bf.GetParameters()
	assert.InDelta(t, 200.0, center, 1e-9) // geometric mean of 100 and 400
	assert.InDelta(t, 300.0, bandwidth, 1e-9)
	assert.InDelta(t, center/bandwidth, q, 1e-9)
}

func TestReset(t *testing.T) {
	bf := NewBandstopFilter(44100, 1000, 400)

	first := bf.ProcessBuffer(tone(500, 44100, 1000))
	bf.Reset()
	second := bf.ProcessBuffer(tone(500, 44100, 1000))

	assert.Equal(t, first, second, "reset must clear all filter state")
}
