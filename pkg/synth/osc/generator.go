// Package osc provides wave generators, the oscillator registry and the
// Oscillator type at the heart of the synthesis pipeline.
package osc

import (
	"math"
	"math/rand"
)

// Generator produces one sample per time instant for the given frequency in
// Hz and phase in radians. Implementations must return a slice of the same
// length as t. Frequency and phase are unconstrained; negative frequencies
// and arbitrary phases go through the same formula as any other value.
type Generator func(t []float64, freq, phase float64) []float64

// Wave names a registered generator.
type Wave string

// The built-in waves, seeded into every registry in this order.
const (
	Sine     Wave = "Sine"
	Square   Wave = "Square"
	Triangle Wave = "Triangle"
	Sawtooth Wave = "Sawtooth"
)

func sine(t []float64, freq, phase float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = math.Sin(2*math.Pi*freq*ti + phase)
	}
	return out
}

func square(t []float64, freq, phase float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = sign(math.Sin(2*math.Pi*freq*ti + phase))
	}
	return out
}

func triangle(t []float64, freq, phase float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = 2 * math.Asin(math.Sin(2*math.Pi*freq*ti+phase)) / math.Pi
	}
	return out
}

func sawtooth(t []float64, freq, phase float64) []float64 {
	offset := phase / (2 * math.Pi)
	out := make([]float64, len(t))
	for i, ti := range t {
		p := freq*ti + offset
		out[i] = 2 * (p - math.Floor(0.5+p))
	}
	return out
}

// sign returns -1, 0 or 1. Exact zero crossings yield 0, so a square wave
// hits zero wherever its underlying sine does.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x
}

// Pulse returns a generator for a rectangular pulse wave with the given duty
// width in (0, 1). Width 0.5 is a square wave without the zero crossings.
// Pulse waves are not registered by default; register the result under a
// custom name with AddOscillator.
func Pulse(width float64) Generator {
	return func(t []float64, freq, phase float64) []float64 {
		offset := phase / (2 * math.Pi)
		out := make([]float64, len(t))
		for i, ti := range t {
			p := freq*ti + offset
			p -= math.Floor(p)
			if p < width {
				out[i] = 1
			} else {
				out[i] = -1
			}
		}
		return out
	}
}

// WhiteNoise returns a generator producing uniform white noise in [-1, 1).
// Frequency and phase are ignored. The output is deterministic for a given
// seed, which keeps compilation repeatable.
func WhiteNoise(seed int64) Generator {
	return func(t []float64, _, _ float64) []float64 {
		rng := rand.New(rand.NewSource(seed))
		out := make([]float64, len(t))
		for i := range out {
			out[i] = 2*rng.Float64() - 1
		}
		return out
	}
}
