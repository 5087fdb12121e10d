package osc

import (
	"github.com/aditya-marathe/PySyn/pkg/dsp/buffer"
	"github.com/aditya-marathe/PySyn/pkg/synth/clock"
)

// Oscillator binds a wave to its generator and a sampling clock. The
// generator is resolved once, at construction; later registry changes do not
// affect an already-constructed oscillator.
type Oscillator struct {
	wave Wave
	gen  Generator
	clk  *clock.Clock
}

// New constructs an oscillator on the process-wide registry and the default
// clock. Fails with ErrUnknownWave if wave is not registered.
func New(wave Wave) (*Oscillator, error) {
	return NewWith(defaultRegistry, clock.Default, wave)
}

// NewWith constructs an oscillator on an explicit registry and clock.
func NewWith(reg *Registry, clk *clock.Clock, wave Wave) (*Oscillator, error) {
	gen, err := reg.Resolve(wave)
	if err != nil {
		return nil, err
	}
	return &Oscillator{wave: wave, gen: gen, clk: clk}, nil
}

// Wave returns the name this oscillator was constructed with.
func (o *Oscillator) Wave() Wave {
	return o.wave
}

// Clock returns the sampling clock the oscillator discretizes against.
func (o *Oscillator) Clock() *clock.Clock {
	return o.clk
}

// Oscillate generates the bound wave at freq Hz with the given phase in
// radians over the span. The buffer length is exactly the span's sample
// count at the oscillator's clock.
func (o *Oscillator) Oscillate(span clock.TimeSpan, freq, phase float64) (buffer.Buffer, error) {
	t, err := span.Samples(o.clk)
	if err != nil {
		return nil, err
	}
	return buffer.Buffer(o.gen(t, freq, phase)), nil
}
