// Package buffer provides the sample buffer type shared by the whole
// synthesis pipeline.
package buffer

// Buffer is a finite ordered sequence of amplitude samples at a fixed
// sampling rate. Samples are nominally in [-1, 1]; mixing may exceed that
// range and it is the output stage's job to clamp or normalize.
type Buffer []float64

// New creates a zeroed buffer of length samples.
func New(length int) Buffer {
	return make(Buffer, length)
}

// Zero fills the buffer with silence.
func (dst Buffer) Zero() {
	for i := range dst {
		dst[i] = 0
	}
}

// Clone returns a copy of the buffer and its contents.
func (src Buffer) Clone() Buffer {
	dst := make(Buffer, len(src))
	copy(dst, src)
	return dst
}

// Gain scales all samples by gain.
func (dst Buffer) Gain(gain float64) {
	for i := range dst {
		dst[i] *= gain
	}
}

// CopyGain copies samples from src into dst, scaling by gain.
func (dst Buffer) CopyGain(src Buffer, gain float64) {
	n := copy(dst, src)
	dst[:n].Gain(gain)
}

// Mix adds src into dst, sample by sample. The shorter operand bounds the
// sum, so a short src contributes silence past its own end.
func (dst Buffer) Mix(src Buffer) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] += src[i]
	}
}

// MixGain adds src scaled by gain into dst, sample by sample.
func (dst Buffer) MixGain(src Buffer, gain float64) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] += src[i] * gain
	}
}

// LinearRamp scales dst with a gain changing linearly from initial to target.
func (dst Buffer) LinearRamp(initial, target float64) {
	if len(dst) == 0 {
		return
	}
	delta := (target - initial) / float64(len(dst))
	for i := range dst {
		dst[i] *= initial
		initial += delta
	}
}

// Peak returns the largest absolute sample value.
func (src Buffer) Peak() float64 {
	peak := 0.0
	for _, s := range src {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}
