package separation

import (
	"context"
	"fmt"

	"github.com/sitarlab/stemsep/logging"
)

// NeuralClient is the contract of an external learned separation model:
// given a waveform, return stem waveforms. The model's internals, loading
// and resource lifecycle are entirely its own; implementations should
// return ErrModelUnavailable or ErrResourceExhausted (possibly wrapped) so
// callers can distinguish retryable failures.
type NeuralClient interface {
	SeparateStems(ctx context.Context, samples []float64, sampleRate int) ([][]float64, error)
}

// Neural adapts a NeuralClient to the Separator interface. The first stem
// returned by the client is taken as the harmonic-like source, the second
// as the percussive-like source.
type Neural struct {
	client NeuralClient
	logger logging.Logger
}

// NewNeural creates a learned-model separator backed by client
func NewNeural(client NeuralClient) *Neural {
	return &Neural{
		client: client,
		logger: logging.WithFields(logging.Fields{"component": "neural"}),
	}
}

// Separate delegates to the external model. The call blocks until the model
// responds or ctx is done; there is no partial result.
func (n *Neural) Separate(ctx context.Context, samples []float64, sampleRate int) (*Result, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	if n.client == nil {
		return nil, fmt.Errorf("%w: no client configured", ErrModelUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stems, err := n.client.SeparateStems(ctx, samples, sampleRate)
	if err != nil {
		n.logger.Error(err, "model separation failed")
		return nil, fmt.Errorf("model separation: %w", err)
	}

	if len(stems) < 2 {
		return nil, fmt.Errorf("%w: model returned %d stems, need at least 2", ErrModelUnavailable, len(stems))
	}

	return &Result{
		Harmonic:   stems[0],
		Percussive: stems[1],
		SampleRate: sampleRate,
	}, nil
}
