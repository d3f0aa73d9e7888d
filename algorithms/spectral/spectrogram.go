package spectral

import (
	"fmt"
	"math/cmplx"
)

// Spectrogram holds a complex time-frequency representation together with
// the transform parameters that produced it. Every downstream stage that
// derives a new matrix must preserve the TimeFrames x FreqBins dimensions.
type Spectrogram struct {
	Data           [][]complex128 `json:"-"`               // Time x Frequency complex matrix
	TimeFrames     int            `json:"time_frames"`     // Number of time frames
	FreqBins       int            `json:"freq_bins"`       // Number of frequency bins
	SampleRate     int            `json:"sample_rate"`     // Sample rate
	WindowSize     int            `json:"window_size"`     // Analysis window size
	HopSize        int            `json:"hop_size"`        // Hop size between frames
	WindowType     string         `json:"window_type"`     // Window used for analysis
	OriginalLength int            `json:"original_length"` // Input signal length in samples
	FreqResolution float64        `json:"freq_resolution"` // Frequency resolution (Hz/bin)
	TimeResolution float64        `json:"time_resolution"` // Time resolution (seconds/frame)
}

// Magnitude computes a fresh magnitude matrix. A new matrix is allocated on
// every call so independent filtering passes never alias each other.
func (s *Spectrogram) Magnitude() [][]float64 {
	magnitude := make([][]float64, s.TimeFrames)
	for t := 0; t < s.TimeFrames; t++ {
		magnitude[t] = make([]float64, s.FreqBins)
		for f := 0; f < s.FreqBins; f++ {
			magnitude[t][f] = cmplx.Abs(s.Data[t][f])
		}
	}
	return magnitude
}

// Clone returns a deep copy sharing no storage with the receiver
func (s *Spectrogram) Clone() *Spectrogram {
	clone := *s
	clone.Data = make([][]complex128, s.TimeFrames)
	for t := 0; t < s.TimeFrames; t++ {
		clone.Data[t] = make([]complex128, s.FreqBins)
		copy(clone.Data[t], s.Data[t])
	}
	return &clone
}

// ApplyMask scales each bin's magnitude by the mask value while retaining
// the original phase, returning a new spectrogram of identical dimensions.
func (s *Spectrogram) ApplyMask(mask [][]float64) (*Spectrogram, error) {
	if len(mask) != s.TimeFrames {
		return nil, fmt.Errorf("mask has %d frames, spectrogram has %d", len(mask), s.TimeFrames)
	}

	masked := s.Clone()
	for t := 0; t < s.TimeFrames; t++ {
		if len(mask[t]) != s.FreqBins {
			return nil, fmt.Errorf("mask frame %d has %d bins, spectrogram has %d", t, len(mask[t]), s.FreqBins)
		}
		for f := 0; f < s.FreqBins; f++ {
			masked.Data[t][f] = s.Data[t][f] * complex(mask[t][f], 0)
		}
	}

	return masked, nil
}
