// Package track sequences timed steps for a single oscillator and compiles
// them into one continuous sample buffer.
package track

import (
	"errors"
	"fmt"

	"github.com/aditya-marathe/PySyn/pkg/dsp/buffer"
	"github.com/aditya-marathe/PySyn/pkg/synth/clock"
	"github.com/aditya-marathe/PySyn/pkg/synth/osc"
)

// ErrNoResolver reports a compile of a non-empty track with no step resolver.
var ErrNoResolver = errors.New("track: no step resolver")

// Step is one sequenced note: opaque pitch and duration tokens, resolved to
// a frequency and a duration by a Resolver at compile time.
type Step struct {
	Pitch    string
	Duration string
}

// Resolver turns step tokens into a frequency in Hz and a duration in
// seconds. It is called once per step, in step order.
type Resolver func(pitch, duration string) (freq float64, dur float64, err error)

// Filter transforms a compiled buffer. Filters run in order after step
// concatenation and must preserve buffer length unless documented otherwise.
type Filter func(buffer.Buffer) buffer.Buffer

// Track owns one oscillator, an ordered step sequence and an optional filter
// chain. Step order is musically significant: compiled output preserves it.
type Track struct {
	osc     *osc.Oscillator
	steps   []Step
	filters []Filter
	resolve Resolver
}

// New creates a track playing steps on o, resolving tokens with resolve.
func New(o *osc.Oscillator, steps []Step, resolve Resolver) *Track {
	return &Track{osc: o, steps: steps, resolve: resolve}
}

// Oscillator returns the oscillator the track plays on.
func (t *Track) Oscillator() *osc.Oscillator {
	return t.osc
}

// Len returns the number of steps.
func (t *Track) Len() int {
	return len(t.steps)
}

// AppendStep adds a step at the end of the sequence.
func (t *Track) AppendStep(s Step) {
	t.steps = append(t.steps, s)
}

// AddFilter appends a transform to the filter chain.
func (t *Track) AddFilter(f Filter) {
	t.filters = append(t.filters, f)
}

// Compile resolves every step in order, oscillates each at phase zero with a
// start offset that accumulates across steps, and concatenates the results
// into one continuous buffer. The filter chain then runs over the whole
// buffer. An empty step sequence compiles to an empty buffer. Compilation is
// idempotent; nothing is cached.
func (t *Track) Compile() (buffer.Buffer, error) {
	if len(t.steps) == 0 {
		return buffer.Buffer{}, nil
	}
	if t.resolve == nil {
		return nil, ErrNoResolver
	}

	var out buffer.Buffer
	offset := 0.0
	for i, s := range t.steps {
		freq, dur, err := t.resolve(s.Pitch, s.Duration)
		if err != nil {
			return nil, fmt.Errorf("track: step %d (%q %q): %w", i, s.Pitch, s.Duration, err)
		}
		buf, err := t.osc.Oscillate(clock.Span(offset, dur), freq, 0)
		if err != nil {
			return nil, fmt.Errorf("track: step %d: %w", i, err)
		}
		out = append(out, buf...)
		offset += dur
	}

	for _, f := range t.filters {
		out = f(out)
	}
	return out, nil
}
