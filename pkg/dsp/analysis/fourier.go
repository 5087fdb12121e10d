package analysis

import (
	"math"

	"github.com/aditya-marathe/PySyn/pkg/dsp/buffer"
	"github.com/aditya-marathe/PySyn/pkg/synth/clock"
)

// FourierTransform computes the discrete Fourier transform of a generated
// buffer, returning the frequency label of each bin alongside the complex
// spectrum. Bin k is labeled k*rate/N for the lower half of the spectrum,
// wrapping to negative frequencies for the upper half (the usual FFT
// frequency convention).
func FourierTransform(buf buffer.Buffer, c *clock.Clock) ([]float64, []complex128) {
	n := len(buf)
	spectrum := make([]complex128, n)
	for i, s := range buf {
		spectrum[i] = complex(s, 0)
	}
	dft(spectrum)
	return FFTFreq(n, c.Rate()), spectrum
}

// FFTFreq returns the frequency labels for an n-point transform at the given
// sampling rate: 0, rate/n, 2*rate/n, ... up to the Nyquist bin, then the
// negative frequencies back down to -rate/n.
func FFTFreq(n, rate int) []float64 {
	freqs := make([]float64, n)
	if n == 0 {
		return freqs
	}
	d := float64(rate) / float64(n)
	positive := (n-1)/2 + 1
	for i := 0; i < positive; i++ {
		freqs[i] = float64(i) * d
	}
	for i := positive; i < n; i++ {
		freqs[i] = float64(i-n) * d
	}
	return freqs
}

// Magnitude returns the absolute value of each spectrum bin.
func Magnitude(spectrum []complex128) []float64 {
	mag := make([]float64, len(spectrum))
	for i, c := range spectrum {
		re, im := real(c), imag(c)
		mag[i] = math.Sqrt(re*re + im*im)
	}
	return mag
}

// PeakBin returns the index of the largest magnitude among the
// non-negative-frequency bins (0..len/2).
func PeakBin(magnitude []float64) int {
	limit := len(magnitude)/2 + 1
	if limit > len(magnitude) {
		limit = len(magnitude)
	}
	peak, peakBin := 0.0, 0
	for i := 0; i < limit; i++ {
		if magnitude[i] > peak {
			peak = magnitude[i]
			peakBin = i
		}
	}
	return peakBin
}
