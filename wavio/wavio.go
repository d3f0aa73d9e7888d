package wavio

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Package wavio is a thin WAV container wrapper around go-audio: decode to
// a mono float64 waveform in [-1, 1], encode 16-bit PCM back. No resampling
// or format negotiation happens here.

// ReadMono decodes a WAV file into mono float64 samples and the sample
// rate. Multi-channel files are downmixed by averaging the channels.
func ReadMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("%s is not a valid WAV file", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		return nil, 0, fmt.Errorf("%s reports %d channels", path, channels)
	}

	bitDepth := int(decoder.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := 1.0 / float64(int(1)<<(bitDepth-1))

	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}
		samples[i] = sum / float64(channels) * scale
	}

	return samples, buf.Format.SampleRate, nil
}

// WriteMono encodes mono float64 samples as a 16-bit PCM WAV file. Samples
// outside [-1, 1] are clipped.
func WriteMono(path string, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	encoder := wav.NewEncoder(f, sampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}

	const peak = 32767.0
	for i, v := range samples {
		clamped := math.Max(-1.0, math.Min(1.0, v))
		buf.Data[i] = int(math.Round(clamped * peak))
	}

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", path, err)
	}

	return nil
}
