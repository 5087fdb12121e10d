// Package oto plays sample buffers through the system audio device using
// the oto library.
package oto

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	otov3 "github.com/ebitengine/oto/v3"

	"github.com/aditya-marathe/PySyn/pkg/dsp/buffer"
)

// Player owns an oto context opened at a fixed sampling rate. Contexts are
// process-wide in oto, so create one Player and reuse it.
type Player struct {
	ctx  *otov3.Context
	rate int
}

// NewPlayer opens the audio device for mono float32 output at rate Hz and
// waits until the device is ready.
func NewPlayer(rate int) (*Player, error) {
	op := &otov3.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       otov3.FormatFloat32LE,
	}
	ctx, ready, err := otov3.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("oto: open context: %w", err)
	}
	<-ready
	return &Player{ctx: ctx, rate: rate}, nil
}

// Play blocks until the whole buffer has drained through the device.
func (p *Player) Play(buf buffer.Buffer, rate int) error {
	if rate != p.rate {
		return fmt.Errorf("oto: device opened at %d Hz, buffer is %d Hz", p.rate, rate)
	}

	pcm := make([]byte, 4*len(buf))
	for i, s := range buf {
		binary.LittleEndian.PutUint32(pcm[4*i:], math.Float32bits(float32(s)))
	}

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	defer player.Close()
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}
