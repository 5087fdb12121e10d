// Package analysis provides spectral analysis of generated sample buffers.
package analysis

import (
	"math"
)

// WindowFunc represents a window function type.
type WindowFunc int

const (
	RectangularWindow WindowFunc = iota
	HannWindow
	HammingWindow
	BlackmanWindow
)

// FFT computes discrete Fourier transforms of fixed-size frames with an
// optional analysis window.
type FFT struct {
	size       int
	window     WindowFunc
	windowData []float64
	work       []complex128
	magnitude  []float64
	phase      []float64
}

// NewFFT creates an FFT processor for frames of the given size. The size
// does not have to be a power of two; other lengths go through Bluestein's
// algorithm at some extra cost.
func NewFFT(size int, window WindowFunc) *FFT {
	f := &FFT{
		size:       size,
		window:     window,
		windowData: make([]float64, size),
		work:       make([]complex128, size),
		magnitude:  make([]float64, size/2+1),
		phase:      make([]float64, size/2+1),
	}
	f.calculateWindow()
	return f
}

// Size returns the frame size.
func (f *FFT) Size() int {
	return f.size
}

// calculateWindow pre-calculates the window coefficients.
func (f *FFT) calculateWindow() {
	n := float64(f.size)

	switch f.window {
	case RectangularWindow:
		for i := 0; i < f.size; i++ {
			f.windowData[i] = 1.0
		}

	case HannWindow:
		for i := 0; i < f.size; i++ {
			f.windowData[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/(n-1.0)))
		}

	case HammingWindow:
		for i := 0; i < f.size; i++ {
			f.windowData[i] = 0.54 - 0.46*math.Cos(2.0*math.Pi*float64(i)/(n-1.0))
		}

	case BlackmanWindow:
		for i := 0; i < f.size; i++ {
			val := 0.42 - 0.5*math.Cos(2.0*math.Pi*float64(i)/(n-1.0)) +
				0.08*math.Cos(4.0*math.Pi*float64(i)/(n-1.0))
			if val < 0 {
				val = 0
			}
			f.windowData[i] = val
		}
	}
}

// Forward transforms one frame, returning magnitude and phase spectra over
// bins 0..size/2. Input shorter than the frame size is zero-padded.
func (f *FFT) Forward(input []float64) (magnitude, phase []float64) {
	for i := 0; i < f.size; i++ {
		if i < len(input) {
			f.work[i] = complex(input[i]*f.windowData[i], 0)
		} else {
			f.work[i] = 0
		}
	}

	dft(f.work)

	for i := 0; i <= f.size/2; i++ {
		re, im := real(f.work[i]), imag(f.work[i])
		f.magnitude[i] = math.Sqrt(re*re + im*im)
		f.phase[i] = math.Atan2(im, re)
	}
	return f.magnitude, f.phase
}

// GetMagnitudeDB returns the last magnitude spectrum in decibels.
func (f *FFT) GetMagnitudeDB() []float64 {
	db := make([]float64, len(f.magnitude))
	for i, mag := range f.magnitude {
		if mag > 0 {
			db[i] = 20.0 * math.Log10(mag)
		} else {
			db[i] = -120.0 // floor
		}
	}
	return db
}

// GetFrequencyBin returns the frequency corresponding to a given FFT bin.
func (f *FFT) GetFrequencyBin(bin int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(f.size)
}

// dft transforms x in place. Power-of-two lengths use the radix-2 kernel
// directly; every other length goes through Bluestein's chirp-z algorithm.
func dft(x []complex128) {
	n := len(x)
	if n <= 1 {
		return
	}
	if n&(n-1) == 0 {
		fftRadix2(x)
	} else {
		bluestein(x)
	}
}

// idft is the inverse of dft, including the 1/n scale.
func idft(x []complex128) {
	n := len(x)
	if n <= 1 {
		return
	}
	for i := range x {
		x[i] = conj(x[i])
	}
	dft(x)
	scale := complex(1/float64(n), 0)
	for i := range x {
		x[i] = conj(x[i]) * scale
	}
}

func conj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}

// fftRadix2 is an in-place iterative Cooley-Tukey FFT. len(x) must be a
// power of two.
func fftRadix2(x []complex128) {
	n := len(x)

	// Bit reversal permutation.
	j := 0
	for i := 0; i < n; i++ {
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
		m := n >> 1
		for m >= 1 && j >= m {
			j -= m
			m >>= 1
		}
		j += m
	}

	// Butterfly stages.
	for stage := 2; stage <= n; stage <<= 1 {
		theta := -2.0 * math.Pi / float64(stage)
		w := complex(math.Cos(theta), math.Sin(theta))

		for k := 0; k < n; k += stage {
			wk := complex(1, 0)
			half := stage / 2
			for j := 0; j < half; j++ {
				i1 := k + j
				i2 := i1 + half
				t := wk * x[i2]
				x[i2] = x[i1] - t
				x[i1] += t
				wk *= w
			}
		}
	}
}

// bluestein evaluates the DFT of an arbitrary-length x as a circular
// convolution of chirp-modulated sequences, carried out with the radix-2
// kernel at the next power of two >= 2n-1.
func bluestein(x []complex128) {
	n := len(x)
	m := nextPow2(2*n - 1)

	// chirp[k] = exp(-i*pi*k^2/n). k^2 is reduced mod 2n in integer space
	// to keep the angle exact for large k.
	chirp := make([]complex128, n)
	for k := 0; k < n; k++ {
		theta := math.Pi * float64((k*k)%(2*n)) / float64(n)
		chirp[k] = complex(math.Cos(theta), -math.Sin(theta))
	}

	a := make([]complex128, m)
	for k := 0; k < n; k++ {
		a[k] = x[k] * chirp[k]
	}

	b := make([]complex128, m)
	b[0] = conj(chirp[0])
	for k := 1; k < n; k++ {
		c := conj(chirp[k])
		b[k] = c
		b[m-k] = c
	}

	fftRadix2(a)
	fftRadix2(b)
	for i := range a {
		a[i] *= b[i]
	}
	idft(a)

	for k := 0; k < n; k++ {
		x[k] = a[k] * chirp[k]
	}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
