package wavio

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")

	sampleRate := 8000
	original := make([]float64, sampleRate)
	for i := range original {
		original[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/float64(sampleRate))
	}

	require.NoError(t, WriteMono(path, original, sampleRate))

	decoded, gotRate, err := ReadMono(path)
	require.NoError(t, err)

	assert.Equal(t, sampleRate, gotRate)
	require.Len(t, decoded, len(original))

	// 16-bit quantization bounds the round-trip error
	for i := range original {
		assert.InDelta(t, original[i], decoded[i], 1.0/32768.0+1e-9, "sample %d", i)
	}
}

func TestWriteClipsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hot.wav")

	require.NoError(t, WriteMono(path, []float64{2.0, -3.0, 0.0}, 8000))

	decoded, _, err := ReadMono(path)
	require.NoError(t, err)
	require.Len(t, decoded, 3)

	assert.InDelta(t, 1.0, decoded[0], 1e-3)
	assert.InDelta(t, -1.0, decoded[1], 1e-3)
	assert.InDelta(t, 0.0, decoded[2], 1e-9)
}

func TestWriteMonoValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	assert.Error(t, WriteMono(path, []float64{0}, 0))
	assert.Error(t, WriteMono(path, []float64{0}, -44100))
}

func TestReadMonoMissingFile(t *testing.T) {
	_, _, err := ReadMono(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}
