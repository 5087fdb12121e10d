// Package portaudio plays sample buffers through PortAudio's default output
// device.
package portaudio

import (
	"fmt"

	pa "github.com/gordonklaus/portaudio"

	"github.com/aditya-marathe/PySyn/pkg/dsp/buffer"
)

// frames per blocking write
const frames = 1024

// Player writes buffers to the default output device in blocking mode. The
// zero value is ready to use; PortAudio is initialized per Play call.
type Player struct{}

// Play blocks until the whole buffer has been written to the device.
func (Player) Play(buf buffer.Buffer, rate int) error {
	if err := pa.Initialize(); err != nil {
		return fmt.Errorf("portaudio: initialize: %w", err)
	}
	defer pa.Terminate()

	out := make([]float32, frames)
	stream, err := pa.OpenDefaultStream(0, 1, float64(rate), frames, &out)
	if err != nil {
		return fmt.Errorf("portaudio: open stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("portaudio: start: %w", err)
	}
	defer stream.Stop()

	for pos := 0; pos < len(buf); pos += frames {
		for i := range out {
			if pos+i < len(buf) {
				out[i] = float32(buf[pos+i])
			} else {
				out[i] = 0
			}
		}
		if err := stream.Write(); err != nil {
			return fmt.Errorf("portaudio: write: %w", err)
		}
	}
	return nil
}
