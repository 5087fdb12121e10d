// Package output defines the playback collaborator consumed by the mixer.
// Concrete backends live in subpackages; the core never touches a device.
package output

import (
	"github.com/aditya-marathe/PySyn/pkg/dsp/buffer"
)

// Player consumes a compiled sample buffer at a given sampling rate, either
// playing it or exporting it. Implementations block until the buffer has
// been fully consumed.
type Player interface {
	Play(buf buffer.Buffer, rate int) error
}

// Discard is a Player that drops its input, recording only how much it was
// given. Useful in tests and headless runs.
type Discard struct {
	Calls   int
	Samples int
	Rate    int
}

// Play records the buffer length and rate and discards the data.
func (d *Discard) Play(buf buffer.Buffer, rate int) error {
	d.Calls++
	d.Samples += len(buf)
	d.Rate = rate
	return nil
}
