package osc

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownWave reports a wave name with no registered generator.
	ErrUnknownWave = errors.New("osc: unknown wave")
	// ErrDuplicateWave reports a registration under a name already in use.
	ErrDuplicateWave = errors.New("osc: duplicate wave")
)

// Registry maps wave names to generators. Registration is expected at setup
// time; lookups may come from any goroutine. There is no removal API, so the
// built-ins can never be displaced.
type Registry struct {
	mu    sync.RWMutex
	gens  map[Wave]Generator
	order []Wave
}

// NewRegistry returns a registry seeded with the built-in waves, in their
// defined order.
func NewRegistry() *Registry {
	r := &Registry{gens: make(map[Wave]Generator)}
	builtins := []struct {
		wave Wave
		gen  Generator
	}{
		{Sine, sine},
		{Square, square},
		{Triangle, triangle},
		{Sawtooth, sawtooth},
	}
	for _, b := range builtins {
		r.gens[b.wave] = b.gen
		r.order = append(r.order, b.wave)
	}
	return r
}

// Register adds a generator under name. Registering a name that already
// exists fails with ErrDuplicateWave and leaves the registry unchanged.
func (r *Registry) Register(name Wave, gen Generator) error {
	if gen == nil {
		return fmt.Errorf("osc: nil generator for %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.gens[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateWave, name)
	}
	r.gens[name] = gen
	r.order = append(r.order, name)
	return nil
}

// Resolve returns the generator registered under name, or ErrUnknownWave.
func (r *Registry) Resolve(name Wave) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.gens[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWave, name)
	}
	return gen, nil
}

// Names returns all registered wave names in insertion order: the built-ins
// first, then custom registrations in registration order.
func (r *Registry) Names() []Wave {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]Wave, len(r.order))
	copy(names, r.order)
	return names
}

// defaultRegistry backs the package-level registration API.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// AddOscillator registers a custom generator on the process-wide registry.
func AddOscillator(name Wave, gen Generator) error {
	return defaultRegistry.Register(name, gen)
}

// Names lists the waves available on the process-wide registry.
func Names() []Wave {
	return defaultRegistry.Names()
}
