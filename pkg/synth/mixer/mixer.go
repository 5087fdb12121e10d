// Package mixer combines named tracks, each with its own gain level, into a
// single output buffer.
package mixer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aditya-marathe/PySyn/pkg/debug"
	"github.com/aditya-marathe/PySyn/pkg/dsp/buffer"
	"github.com/aditya-marathe/PySyn/pkg/dsp/gain"
	"github.com/aditya-marathe/PySyn/pkg/output"
	"github.com/aditya-marathe/PySyn/pkg/synth/clock"
	"github.com/aditya-marathe/PySyn/pkg/synth/osc"
	"github.com/aditya-marathe/PySyn/pkg/synth/track"
)

var (
	// ErrUnknownTrack reports a level operation on a name with no track.
	ErrUnknownTrack = errors.New("mixer: unknown track")
	// ErrNoPlayer reports a Play with no player configured.
	ErrNoPlayer = errors.New("mixer: no player configured")
	// ErrNotCompiled reports a Play before any successful Compile.
	ErrNotCompiled = errors.New("mixer: not compiled")
)

// Mixer owns a named collection of tracks and a gain level per track. Track
// and level key sets are always equal. A Mixer is not safe for concurrent
// mutation; compile parallelism is internal.
type Mixer struct {
	clk    *clock.Clock
	tracks map[string]*track.Track
	levels map[string]float64
	order  []string

	out      buffer.Buffer
	compiled bool

	player output.Player
	log    *debug.Logger
}

// New returns an empty mixer on the given clock.
func New(c *clock.Clock) *Mixer {
	return &Mixer{
		clk:    c,
		tracks: make(map[string]*track.Track),
		levels: make(map[string]float64),
		log:    debug.Default(),
	}
}

// AddTrack registers a new track under name at unit level. If a track of the
// same name already exists this is a no-op: the existing track and its level
// are preserved.
func (m *Mixer) AddTrack(o *osc.Oscillator, steps []track.Step, resolve track.Resolver, name string) {
	if _, exists := m.tracks[name]; exists {
		m.log.Warn("mixer: track %q already exists, keeping the original", name)
		return
	}
	m.tracks[name] = track.New(o, steps, resolve)
	m.levels[name] = 1.0
	m.order = append(m.order, name)
}

// Track returns the track registered under name, or nil.
func (m *Mixer) Track(name string) *track.Track {
	return m.tracks[name]
}

// Names returns the track names in insertion order.
func (m *Mixer) Names() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Level returns the gain level of the named track.
func (m *Mixer) Level(name string) (float64, error) {
	level, ok := m.levels[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}
	return level, nil
}

// SetLevel sets the gain level of the named track.
func (m *Mixer) SetLevel(name string, level float64) error {
	if _, ok := m.levels[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}
	m.levels[name] = level
	return nil
}

// SetLevelDb sets the gain level of the named track in decibels.
func (m *Mixer) SetLevelDb(name string, db float64) error {
	return m.SetLevel(name, gain.DbToLinear(db))
}

// SetPlayer configures the playback collaborator used by Play.
func (m *Mixer) SetPlayer(p output.Player) {
	m.player = p
}

// Compile compiles every track and mixes the results into one output buffer.
// Tracks are independent, so they compile concurrently; the reduction runs
// in insertion order, which keeps the output deterministic. Each compiled
// buffer is scaled by its level and summed into an output the length of the
// longest track, shorter tracks contributing silence past their own end.
func (m *Mixer) Compile() error {
	bufs := make([]buffer.Buffer, len(m.order))
	errs := make([]error, len(m.order))

	var wg sync.WaitGroup
	for i, name := range m.order {
		wg.Add(1)
		go func(i int, tr *track.Track) {
			defer wg.Done()
			bufs[i], errs[i] = tr.Compile()
		}(i, m.tracks[name])
	}
	wg.Wait()

	longest := 0
	for i, name := range m.order {
		if errs[i] != nil {
			return fmt.Errorf("mixer: track %q: %w", name, errs[i])
		}
		if len(bufs[i]) > longest {
			longest = len(bufs[i])
		}
	}

	out := buffer.New(longest)
	for i, name := range m.order {
		out.MixGain(bufs[i], m.levels[name])
	}

	m.out = out
	m.compiled = true
	m.log.Debug("mixer: compiled %d tracks into %d samples", len(m.order), longest)
	return nil
}

// Output returns the most recently compiled mix. The buffer reflects mixer
// state as of the last Compile; it is not recomputed on access.
func (m *Mixer) Output() buffer.Buffer {
	return m.out
}

// Play sends the compiled output to the configured player.
func (m *Mixer) Play() error {
	if m.player == nil {
		return ErrNoPlayer
	}
	if !m.compiled {
		return ErrNotCompiled
	}
	return m.player.Play(m.out, m.clk.Rate())
}

// CompilePlay compiles the mix and immediately plays the resulting buffer.
func (m *Mixer) CompilePlay() error {
	if err := m.Compile(); err != nil {
		return err
	}
	return m.Play()
}
