// Package wav exports sample buffers as 16-bit PCM mono RIFF/WAVE.
package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/aditya-marathe/PySyn/pkg/dsp/buffer"
	"github.com/aditya-marathe/PySyn/pkg/dsp/gain"
)

const (
	numChannels   = 1
	bitsPerSample = 16
	blockAlign    = numChannels * bitsPerSample / 8
	headerSize    = 44
)

// Write encodes buf at the given sampling rate onto w. Samples are hard
// clipped to [-1, 1] before quantization.
func Write(w io.Writer, buf buffer.Buffer, rate int) error {
	if rate <= 0 {
		return fmt.Errorf("wav: invalid sampling rate %d", rate)
	}

	dataSize := len(buf) * blockAlign

	//  0  4 "RIFF"
	//  4  4 riffSize = 36 + dataSize
	//  8  4 "WAVE"
	// 12  4 "fmt "
	// 16  4 fmtSize = 16
	// 20  2 PCM format tag
	// 22  2 channels
	// 24  4 sample rate
	// 28  4 byte rate
	// 32  2 block align
	// 34  2 bits per sample
	// 36  4 "data"
	// 40  4 dataSize
	header := new(bytes.Buffer)
	header.WriteString("RIFF")
	binary.Write(header, binary.LittleEndian, uint32(headerSize-8+dataSize))
	header.WriteString("WAVE")
	header.WriteString("fmt ")
	binary.Write(header, binary.LittleEndian, uint32(16))
	binary.Write(header, binary.LittleEndian, uint16(1))
	binary.Write(header, binary.LittleEndian, uint16(numChannels))
	binary.Write(header, binary.LittleEndian, uint32(rate))
	binary.Write(header, binary.LittleEndian, uint32(rate*blockAlign))
	binary.Write(header, binary.LittleEndian, uint16(blockAlign))
	binary.Write(header, binary.LittleEndian, uint16(bitsPerSample))
	header.WriteString("data")
	binary.Write(header, binary.LittleEndian, uint32(dataSize))
	if _, err := w.Write(header.Bytes()); err != nil {
		return fmt.Errorf("wav: write header: %w", err)
	}

	pcm := make([]byte, dataSize)
	for i, s := range buf {
		v := int16(gain.HardClip(s, 1) * 32767)
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(v))
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("wav: write data: %w", err)
	}
	return nil
}

// Player satisfies output.Player by WAV-encoding everything it is handed
// onto W, e.g. a file or stdout.
type Player struct {
	W io.Writer
}

// Play encodes buf onto the underlying writer.
func (p Player) Play(buf buffer.Buffer, rate int) error {
	return Write(p.W, buf, rate)
}
