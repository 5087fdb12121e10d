package clock

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration reports a negative duration passed to time sampling.
// A zero duration is valid and yields an empty sample sequence.
var ErrInvalidDuration = errors.New("clock: invalid duration")

// TimeSpan is the half-open interval [Start, Start+Duration), in seconds.
// Start is expected to be nonnegative; it is not validated. TimeSpan is a
// value type; construct one per oscillation.
type TimeSpan struct {
	Start    float64
	Duration float64
}

// Span is shorthand for TimeSpan{Start: start, Duration: duration}.
func Span(start, duration float64) TimeSpan {
	return TimeSpan{Start: start, Duration: duration}
}

// NumSamples returns the number of sample instants the span discretizes to
// at the given clock: floor(rate * Duration).
func (ts TimeSpan) NumSamples(c *Clock) int {
	if ts.Duration <= 0 {
		return 0
	}
	return int(float64(c.rate) * ts.Duration)
}

// Samples discretizes the span into evenly spaced time values. It returns
// exactly floor(rate*Duration) instants starting at Start with spacing
// Duration/n; the right endpoint is excluded. A zero duration yields an
// empty sequence. A negative duration fails with ErrInvalidDuration.
func (ts TimeSpan) Samples(c *Clock) ([]float64, error) {
	if ts.Duration < 0 {
		return nil, fmt.Errorf("%w: %v s", ErrInvalidDuration, ts.Duration)
	}
	n := ts.NumSamples(c)
	if n == 0 {
		return []float64{}, nil
	}
	step := ts.Duration / float64(n)
	t := make([]float64, n)
	for i := range t {
		t[i] = ts.Start + float64(i)*step
	}
	return t, nil
}
