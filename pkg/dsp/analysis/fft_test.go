package analysis

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/aditya-marathe/PySyn/pkg/dsp/buffer"
	"github.com/aditya-marathe/PySyn/pkg/synth/clock"
)

// naiveDFT is the O(n^2) reference the fast paths are checked against.
func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			theta := -2 * math.Pi * float64(k*i) / float64(n)
			out[k] += x[i] * cmplx.Rect(1, theta)
		}
	}
	return out
}

func TestDFTMatchesNaive(t *testing.T) {
	sizes := []int{2, 4, 8, 16, 3, 5, 6, 7, 12, 100, 441}
	for _, n := range sizes {
		x := make([]complex128, n)
		for i := range x {
			// Deterministic, aperiodic test signal.
			x[i] = complex(math.Sin(0.7*float64(i))+0.3*math.Cos(2.1*float64(i)), 0)
		}
		want := naiveDFT(x)

		got := make([]complex128, n)
		copy(got, x)
		dft(got)

		for k := range want {
			if cmplx.Abs(got[k]-want[k]) > 1e-6*float64(n) {
				t.Errorf("n=%d bin %d: got %v, want %v", n, k, got[k], want[k])
				break
			}
		}
	}
}

func TestDFTInverseRoundTrip(t *testing.T) {
	for _, n := range []int{8, 10, 27, 128} {
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(math.Sin(float64(i)), 0)
		}
		orig := make([]complex128, n)
		copy(orig, x)

		dft(x)
		idft(x)

		for i := range x {
			if cmplx.Abs(x[i]-orig[i]) > 1e-9 {
				t.Errorf("n=%d sample %d: got %v, want %v", n, i, x[i], orig[i])
				break
			}
		}
	}
}

func TestFFTPeakDetection(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		window WindowFunc
	}{
		{"Rectangular 256", 256, RectangularWindow},
		{"Hann 512", 512, HannWindow},
		{"Hamming 1024", 1024, HammingWindow},
		{"Blackman 2048", 2048, BlackmanWindow},
		{"Rectangular 1000 (Bluestein)", 1000, RectangularWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fft := NewFFT(tt.size, tt.window)

			freq := 440.0
			sampleRate := 44100.0
			input := make([]float64, tt.size)
			for i := 0; i < tt.size; i++ {
				input[i] = math.Sin(2.0 * math.Pi * freq * float64(i) / sampleRate)
			}

			magnitude, _ := fft.Forward(input)

			maxMag, maxBin := 0.0, 0
			for i, mag := range magnitude {
				if mag > maxMag {
					maxMag = mag
					maxBin = i
				}
			}

			peakFreq := fft.GetFrequencyBin(maxBin, sampleRate)
			tolerance := sampleRate / float64(tt.size) // one bin width
			if math.Abs(peakFreq-freq) > tolerance {
				t.Errorf("peak at %f Hz, want %f Hz", peakFreq, freq)
			}
		})
	}
}

func TestWindowCoefficients(t *testing.T) {
	size := 1024
	windows := []struct {
		name   string
		window WindowFunc
	}{
		{"Rectangular", RectangularWindow},
		{"Hann", HannWindow},
		{"Hamming", HammingWindow},
		{"Blackman", BlackmanWindow},
	}

	for _, w := range windows {
		t.Run(w.name, func(t *testing.T) {
			fft := NewFFT(size, w.window)
			for i, coeff := range fft.windowData {
				if coeff < 0 || coeff > 1.0001 {
					t.Errorf("coefficient %d = %f out of [0, 1]", i, coeff)
				}
			}
			// All supported windows are symmetric.
			for i := 0; i < size/2; i++ {
				if math.Abs(fft.windowData[i]-fft.windowData[size-1-i]) > 1e-10 {
					t.Errorf("window not symmetric at %d", i)
				}
			}
		})
	}
}

func TestFFTFreqConvention(t *testing.T) {
	tests := []struct {
		n    int
		rate int
		want []float64
	}{
		{8, 8, []float64{0, 1, 2, 3, -4, -3, -2, -1}},
		{7, 7, []float64{0, 1, 2, 3, -3, -2, -1}},
		{4, 44100, []float64{0, 11025, 22050, -11025}},
	}
	for _, tt := range tests {
		got := FFTFreq(tt.n, tt.rate)
		if len(got) != len(tt.want) {
			t.Fatalf("n=%d: len = %d, want %d", tt.n, len(got), len(tt.want))
		}
		for i := range tt.want {
			if math.Abs(got[i]-tt.want[i]) > 1e-9 {
				t.Errorf("n=%d bin %d = %v, want %v", tt.n, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFourierTransformSinePeak(t *testing.T) {
	// One full second of a pure sine at 44100 Hz puts the magnitude peak
	// at the bin whose label equals the frequency.
	const freq = 440.0
	c := clock.New(44100)
	buf := make(buffer.Buffer, c.Rate())
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(c.Rate()))
	}

	freqs, spectrum := FourierTransform(buf, c)
	if len(spectrum) != len(buf) || len(freqs) != len(buf) {
		t.Fatalf("lengths: freqs=%d spectrum=%d, want %d", len(freqs), len(spectrum), len(buf))
	}

	peak := PeakBin(Magnitude(spectrum))
	if math.Abs(freqs[peak]-freq) > 0.5 {
		t.Errorf("peak bin %d labeled %v Hz, want %v Hz", peak, freqs[peak], freq)
	}
}
