package separation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient is a canned NeuralClient for testing the adapter
type stubClient struct {
	stems [][]float64
	err   error
	calls int
}

func (s *stubClient) SeparateStems(ctx context.Context, samples []float64, sampleRate int) ([][]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.stems, s.err
}

func TestNeuralSeparate(t *testing.T) {
	harmonic := []float64{0.1, 0.2, 0.3}
	percussive := []float64{0.3, 0.2, 0.1}

	client := &stubClient{stems: [][]float64{harmonic, percussive}}
	n := NewNeural(client)

	result, err := n.Separate(context.Background(), []float64{1, 2, 3}, 44100)
	require.NoError(t, err)

	assert.Equal(t, harmonic, result.Harmonic)
	assert.Equal(t, percussive, result.Percussive)
	assert.Equal(t, 44100, result.SampleRate)
	assert.Equal(t, 1, client.calls)
}

func TestNeuralEmptyInput(t *testing.T) {
	client := &stubClient{}
	n := NewNeural(client)

	_, err := n.Separate(context.Background(), nil, 44100)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Zero(t, client.calls, "the model must not be invoked for empty input")
}

func TestNeuralNilClient(t *testing.T) {
	n := NewNeural(nil)

	_, err := n.Separate(context.Background(), []float64{1}, 44100)
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestNeuralClientErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "model unavailable", err: fmt.Errorf("loading weights: %w", ErrModelUnavailable), sentinel: ErrModelUnavailable},
		{name: "resource exhausted", err: ErrResourceExhausted, sentinel: ErrResourceExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNeural(&stubClient{err: tt.err})

			_, err := n.Separate(context.Background(), []float64{1, 2}, 44100)
			assert.ErrorIs(t, err, tt.sentinel, "client error classification must survive wrapping")
		})
	}
}

func TestNeuralTooFewStems(t *testing.T) {
	n := NewNeural(&stubClient{stems: [][]float64{{0.1}}})

	_, err := n.Separate(context.Background(), []float64{1, 2}, 44100)
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestNeuralCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &stubClient{stems: [][]float64{{0}, {0}}}
	n := NewNeural(client)

	_, err := n.Separate(ctx, []float64{1}, 44100)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, client.calls)
}

func TestSeparatorInterface(t *testing.T) {
	// Both variants satisfy the same contract
	var _ Separator = &Neural{}

	h, err := NewHPSS(DefaultConfig())
	require.NoError(t, err)
	var _ Separator = h
}
