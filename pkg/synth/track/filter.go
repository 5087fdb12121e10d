package track

import (
	"github.com/aditya-marathe/PySyn/pkg/dsp/buffer"
	"github.com/aditya-marathe/PySyn/pkg/dsp/gain"
	"github.com/aditya-marathe/PySyn/pkg/synth/clock"
)

// Fade returns a length-preserving filter that ramps the first attack
// seconds of a buffer up from silence and the last release seconds back
// down. Ramps longer than the buffer are shortened to fit.
func Fade(c *clock.Clock, attack, release float64) Filter {
	return func(buf buffer.Buffer) buffer.Buffer {
		na := clock.Span(0, attack).NumSamples(c)
		nr := clock.Span(0, release).NumSamples(c)
		if na > len(buf) {
			na = len(buf)
		}
		if nr > len(buf) {
			nr = len(buf)
		}
		buf[:na].LinearRamp(0, 1)
		buf[len(buf)-nr:].LinearRamp(1, 0)
		return buf
	}
}

// SoftClip returns a length-preserving filter that tames peaks above
// threshold with a tanh knee.
func SoftClip(threshold float64) Filter {
	return func(buf buffer.Buffer) buffer.Buffer {
		for i, s := range buf {
			buf[i] = gain.SoftClip(s, threshold)
		}
		return buf
	}
}

// Echo returns a filter that feeds a delayed copy of the signal back
// into itself. delay is the echo time in seconds, feedback the gain of
// each repeat and mix the wet level added to the dry signal. The output
// is extended by the decay tail, down to repeats below -60 dB.
func Echo(c *clock.Clock, delay, feedback, mix float64) Filter {
	return func(buf buffer.Buffer) buffer.Buffer {
		n := clock.Span(0, delay).NumSamples(c)
		if n <= 0 || feedback <= 0 || mix <= 0 {
			return buf
		}

		// Number of audible repeats before the tail falls below -60 dB.
		floor := gain.DbToLinear(-60)
		repeats := 1
		for g := mix * feedback; g > floor && repeats < 64; g *= feedback {
			repeats++
		}

		out := buffer.New(len(buf) + repeats*n)
		copy(out, buf)
		line := buffer.New(n)
		pos := 0
		for i := range out {
			var dry float64
			if i < len(buf) {
				dry = buf[i]
			}
			wet := line[pos]
			out[i] = dry + mix*wet
			line[pos] = dry + feedback*wet
			pos++
			if pos == n {
				pos = 0
			}
		}
		return out
	}
}
