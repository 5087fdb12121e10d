// Package gain provides amplitude and gain-related DSP operations.
package gain

import (
	"math"
)

// MinDB is the minimum dB value (effectively -infinity).
const MinDB = -200.0

// LinearToDb converts a linear amplitude value to decibels.
// Returns MinDB for values <= 0.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * math.Log10(linear)
}

// DbToLinear converts a decibel value to linear amplitude.
// Values <= MinDB return 0.
func DbToLinear(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// HardClip limits input to [-threshold, threshold].
func HardClip(input, threshold float64) float64 {
	if input > threshold {
		return threshold
	}
	if input < -threshold {
		return -threshold
	}
	return input
}

// SoftClip limits input amplitude with a tanh knee above threshold.
func SoftClip(input, threshold float64) float64 {
	absInput := input
	if absInput < 0 {
		absInput = -absInput
	}
	if absInput <= threshold {
		return input
	}
	return threshold * fastTanh(input/threshold)
}

// fastTanh approximates tanh for soft clipping.
func fastTanh(x float64) float64 {
	if x < -3 {
		return -1
	}
	if x > 3 {
		return 1
	}
	x2 := x * x
	return x * (27 + x2) / (27 + 9*x2)
}
