package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFT provides forward and inverse Fourier transforms for real signals
type FFT struct{}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// ComputeReal computes the FFT of a real signal.
// mjibson/go-dsp handles all sizes efficiently, including non-power-of-2.
func (f *FFT) ComputeReal(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.FFTReal(x)
}

// ComputeInverseReal computes the inverse FFT of a full complex spectrum
// and returns the real part. The imaginary residue of a Hermitian spectrum
// is discarded.
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	result := fft.IFFT(x)
	realResult := make([]float64, len(result))

	for i, val := range result {
		realResult[i] = real(val)
	}

	return realResult
}

// ExpandHalfSpectrum rebuilds a full n-point spectrum from its one-sided
// half (bins 0..n/2) using Hermitian symmetry, so a real inverse exists.
func ExpandHalfSpectrum(half []complex128, n int) []complex128 {
	full := make([]complex128, n)
	copy(full, half)

	for k := n/2 + 1; k < n; k++ {
		c := half[n-k]
		full[k] = complex(real(c), -imag(c))
	}

	return full
}
