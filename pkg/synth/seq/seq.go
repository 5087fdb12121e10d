// Package seq resolves step tokens into frequencies and durations: the step
// sequencer side of the track contract.
package seq

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rest is the pitch token for silence.
const Rest = "-"

var (
	// ErrBadPitch reports a pitch token that is not scientific pitch
	// notation (or Rest).
	ErrBadPitch = errors.New("seq: bad pitch")
	// ErrBadDuration reports a duration token that is not a fraction of a
	// whole note.
	ErrBadDuration = errors.New("seq: bad duration")
)

// Sequencer resolves scientific pitch notation ("A4", "C#3", "Bb2") and
// fractional note lengths ("1/4", "3/8", "1") at a fixed tempo.
type Sequencer struct {
	bpm float64
}

// New creates a sequencer at the given tempo in quarter-note beats per
// minute.
func New(bpm float64) (*Sequencer, error) {
	if bpm <= 0 {
		return nil, fmt.Errorf("seq: tempo must be positive, got %v", bpm)
	}
	return &Sequencer{bpm: bpm}, nil
}

// Tempo returns the tempo in beats per minute.
func (s *Sequencer) Tempo() float64 {
	return s.bpm
}

// Resolve implements the step resolver contract. Rest resolves to 0 Hz,
// which every built-in wave renders as silence at phase zero.
func (s *Sequencer) Resolve(pitch, duration string) (float64, float64, error) {
	dur, err := s.noteLength(duration)
	if err != nil {
		return 0, 0, err
	}
	if pitch == Rest {
		return 0, dur, nil
	}
	midi, err := parseNote(pitch)
	if err != nil {
		return 0, 0, err
	}
	// Equal temperament around A4 = 440 Hz (MIDI note 69).
	freq := 440.0 * math.Pow(2, (midi-69)/12)
	return freq, dur, nil
}

// noteLength converts a fraction of a whole note to seconds at the
// sequencer's tempo. A whole note spans four beats: 240/bpm seconds.
func (s *Sequencer) noteLength(token string) (float64, error) {
	num, den := token, "1"
	if i := strings.IndexByte(token, '/'); i >= 0 {
		num, den = token[:i], token[i+1:]
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, token)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, token)
	}
	whole := 240.0 / s.bpm
	return whole * float64(n) / float64(d), nil
}

// noteOffsets maps note names (with enharmonic spellings) to semitone
// offsets from C.
var noteOffsets = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "DB": 1,
	"D": 2,
	"D#": 3, "EB": 3,
	"E": 4, "FB": 4,
	"F": 5, "E#": 5,
	"F#": 6, "GB": 6,
	"G": 7,
	"G#": 8, "AB": 8,
	"A": 9,
	"A#": 10, "BB": 10,
	"B": 11, "CB": 11,
}

// parseNote parses scientific pitch notation into a MIDI note number.
// C4 is 60, A4 is 69. Octaves may be negative ("C-1" is 0).
func parseNote(token string) (float64, error) {
	str := strings.ToUpper(strings.TrimSpace(token))

	// The octave starts at the first digit or minus sign.
	octaveStart := -1
	for i, ch := range str {
		if ch >= '0' && ch <= '9' || ch == '-' {
			octaveStart = i
			break
		}
	}
	if octaveStart <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadPitch, token)
	}

	offset, ok := noteOffsets[str[:octaveStart]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadPitch, token)
	}
	octave, err := strconv.Atoi(str[octaveStart:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadPitch, token)
	}
	return float64((octave+1)*12 + offset), nil
}
