// Package clock provides the sampling clock and the time discretization used
// by every oscillator in a synthesis session.
package clock

// DefaultRate is the sampling rate of the Default clock, in samples per second.
const DefaultRate = 44100

// Clock fixes the sampling rate for a synthesis session. The rate is immutable
// after construction: every buffer generated against one clock shares its
// timing semantics. Swapping clocks mid-session does not fail, but it
// invalidates the timing of previously generated buffers, so don't.
type Clock struct {
	rate int
}

// Default is the process-wide clock at DefaultRate.
var Default = New(DefaultRate)

// New returns a clock at the given rate. Panics if rate is not positive,
// since a non-positive rate is a programming error rather than input.
func New(rate int) *Clock {
	if rate <= 0 {
		panic("clock: sampling rate must be positive")
	}
	return &Clock{rate: rate}
}

// Rate returns the sampling rate in samples per second.
func (c *Clock) Rate() int {
	return c.rate
}
