package filters

import (
	"fmt"
	"math"
)

// BandstopFilter implements a digital band-stop (notch) filter using biquad
// topology.
//
// This implementation uses the cookbook formulas from Robert Bristow-Johnson's
// "Cookbook formulae for audio EQ biquad filter coefficients"
// Reference: https://webaudio.github.io/Audio-EQ-Cookbook/audio-eq-cookbook.html
type BandstopFilter struct {
	sampleRate int
	centerFreq float64 // Center frequency in Hz
	bandwidth  float64 // Stop-band width in Hz
	qFactor    float64 // Quality factor (centerFreq/bandwidth)

	// Biquad coefficients
	b0, b1, b2 float64 // Numerator coefficients
	a0, a1, a2 float64 // Denominator coefficients

	// State variables for direct form II implementation
	x1, x2 float64 // Delay line
}

// NewBandstopFilter creates a notch filter rejecting a band around centerFreq.
//
// The Q factor is calculated as centerFreq/bandwidth; wider bandwidths give
// gentler, broader notches.
func NewBandstopFilter(sampleRate int, centerFreq, bandwidth float64) *BandstopFilter {
	bf := &BandstopFilter{
		sampleRate: sampleRate,
		centerFreq: centerFreq,
		bandwidth:  bandwidth,
		qFactor:    centerFreq / bandwidth,
	}

	bf.computeCoefficients()
	return bf
}

// NewBandstopFromBand creates a notch filter rejecting the band [lowHz, highHz].
// The center is the geometric mean of the band edges.
func NewBandstopFromBand(sampleRate int, lowHz, highHz float64) (*BandstopFilter, error) {
	nyquist := float64(sampleRate) / 2.0
	if lowHz <= 0 || highHz <= lowHz {
		return nil, fmt.Errorf("band edges must satisfy 0 < low < high, got [%g, %g]", lowHz, highHz)
	}
	if highHz >= nyquist {
		return nil, fmt.Errorf("upper band edge %g Hz must be below Nyquist (%g Hz)", highHz, nyquist)
	}

	center := math.Sqrt(lowHz * highHz)
	return NewBandstopFilter(sampleRate, center, highHz-lowHz), nil
}

// computeCoefficients calculates the biquad coefficients using the cookbook formula.
func (bf *BandstopFilter) computeCoefficients() {
	// Normalize frequency: w0 = 2*pi*f0/Fs
	w0 := 2.0 * math.Pi * bf.centerFreq / float64(bf.sampleRate)

	// Prevent numerical issues at Nyquist
	if w0 >= math.Pi {
		w0 = math.Pi * 0.99
	}

	cosW0 := math.Cos(w0)
	sinW0 := math.Sin(w0)

	// Alpha parameter: alpha = sin(w0)/(2*Q)
	alpha := sinW0 / (2.0 * bf.qFactor)

	// Notch coefficients (cookbook formula)
	bf.b0 = 1.0
	bf.b1 = -2.0 * cosW0
	bf.b2 = 1.0
	bf.a0 = 1.0 + alpha
	bf.a1 = -2.0 * cosW0
	bf.a2 = 1.0 - alpha

	// Normalize by a0 for direct form II implementation
	bf.b0 /= bf.a0
	bf.b1 /= bf.a0
	bf.b2 /= bf.a0
	bf.a1 /= bf.a0
	bf.a2 /= bf.a0
	bf.a0 = 1.0
}

// Process applies the filter to a single sample.
// Uses Direct Form II biquad implementation for numerical stability.
func (bf *BandstopFilter) Process(input float64) float64 {
	// w[n] = x[n] - a1*w[n-1] - a2*w[n-2]
	w := input - bf.a1*bf.x1 - bf.a2*bf.x2

	// y[n] = b0*w[n] + b1*w[n-1] + b2*w[n-2]
	output := bf.b0*w + bf.b1*bf.x1 + bf.b2*bf.x2

	bf.x2 = bf.x1
	bf.x1 = w

	return output
}

// ProcessBuffer applies the filter to an entire buffer of samples.
func (bf *BandstopFilter) ProcessBuffer(input []float64) []float64 {
	output := make([]float64, len(input))
	for i, sample := range input {
		output[i] = bf.Process(sample)
	}
	return output
}

// Reset clears the filter's internal delay line.
// Call this when processing discontinuous audio segments.
func (bf *BandstopFilter) Reset() {
	bf.x1, bf.x2 = 0.0, 0.0
}

// GetParameters returns the current filter parameters.
func (bf *BandstopFilter) GetParameters() (centerFreq, bandwidth, qFactor float64) {
	return bf.centerFreq, bf.bandwidth, bf.qFactor
}

// GetFrequencyResponse computes the magnitude response at a given frequency
// (linear scale).
func (bf *BandstopFilter) GetFrequencyResponse(frequency float64) float64 {
	w := 2.0 * math.Pi * frequency / float64(bf.sampleRate)

	cosW := math.Cos(w)
	sinW := math.Sin(w)
	cos2W := math.Cos(2 * w)
	sin2W := math.Sin(2 * w)

	// Numerator: b0 + b1*e^-jw + b2*e^-j2w
	numReal := bf.b0 + bf.b1*cosW + bf.b2*cos2W
	numImag := -bf.b1*sinW - bf.b2*sin2W

	// Denominator: a0 + a1*e^-jw + a2*e^-j2w
	denReal := bf.a0 + bf.a1*cosW + bf.a2*cos2W
	denImag := -bf.a1*sinW - bf.a2*sin2W

	denMagSq := denReal*denReal + denImag*denImag

	hReal := (numReal*denReal + numImag*denImag) / denMagSq
	hImag := (numImag*denReal - numReal*denImag) / denMagSq

	return math.Sqrt(hReal*hReal + hImag*hImag)
}
