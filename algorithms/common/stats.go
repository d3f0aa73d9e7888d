package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SignalStats summarizes a waveform for reporting
type SignalStats struct {
	Duration float64 `json:"duration"` // Seconds
	RMS      float64 `json:"rms"`      // Root-mean-square amplitude
	Peak     float64 `json:"peak"`     // Peak absolute amplitude
	Samples  int     `json:"samples"`  // Sample count
}

// ComputeSignalStats computes duration, RMS and peak for a waveform
func ComputeSignalStats(signal []float64, sampleRate int) SignalStats {
	stats := SignalStats{
		Samples: len(signal),
		Peak:    Peak(signal),
		RMS:     RMS(signal),
	}
	if sampleRate > 0 {
		stats.Duration = float64(len(signal)) / float64(sampleRate)
	}
	return stats
}

// RMS calculates the root-mean-square amplitude of a signal
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0.0
	}

	sumSquares := floats.Dot(signal, signal)
	return math.Sqrt(sumSquares / float64(len(signal)))
}

// AmplitudeToDB converts a linear amplitude to decibels relative to ref,
// floored at -120 dB to keep silence finite
func AmplitudeToDB(amplitude, ref float64) float64 {
	const floor = -120.0

	if amplitude <= 0 || ref <= 0 {
		return floor
	}

	db := 20.0 * math.Log10(amplitude/ref)
	return math.Max(db, floor)
}
