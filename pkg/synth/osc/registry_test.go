package osc

import (
	"errors"
	"testing"

	"github.com/aditya-marathe/PySyn/pkg/synth/clock"
)

func TestBuiltinOrder(t *testing.T) {
	reg := NewRegistry()
	want := []Wave{Sine, Square, Triangle, Sawtooth}
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegisterCustom(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("Pulse25", Pulse(0.25)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register("Noise", WhiteNoise(1)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	names := reg.Names()
	if len(names) != 6 || names[4] != "Pulse25" || names[5] != "Noise" {
		t.Errorf("Names() = %v, want builtins then Pulse25, Noise", names)
	}

	if _, err := reg.Resolve("Pulse25"); err != nil {
		t.Errorf("Resolve(Pulse25): %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()

	// The original Sine generator must survive the failed registration.
	before, err := reg.Resolve(Sine)
	if err != nil {
		t.Fatal(err)
	}
	ref := before([]float64{0, 0.001, 0.002}, 440, 0)

	err = reg.Register(Sine, Pulse(0.5))
	if !errors.Is(err, ErrDuplicateWave) {
		t.Fatalf("error = %v, want ErrDuplicateWave", err)
	}

	after, err := reg.Resolve(Sine)
	if err != nil {
		t.Fatal(err)
	}
	got := after([]float64{0, 0.001, 0.002}, 440, 0)
	for i := range ref {
		if got[i] != ref[i] {
			t.Fatalf("generator changed after failed duplicate registration")
		}
	}

	if n := len(reg.Names()); n != 4 {
		t.Errorf("registry grew to %d entries on failed registration", n)
	}
}

func TestRegisterNilGenerator(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("Broken", nil); err == nil {
		t.Error("nil generator registered without error")
	}
}

func TestResolveUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Resolve("Chirp")
	if !errors.Is(err, ErrUnknownWave) {
		t.Errorf("error = %v, want ErrUnknownWave", err)
	}
}

func TestNewUnknownWave(t *testing.T) {
	_, err := NewWith(NewRegistry(), clock.Default, "NoSuchWave")
	if !errors.Is(err, ErrUnknownWave) {
		t.Errorf("error = %v, want ErrUnknownWave", err)
	}
}

func TestOscillatorKeepsResolvedGenerator(t *testing.T) {
	// Construction resolves the generator once; the oscillator works even
	// if it was built from a registry that later gains more waves.
	reg := NewRegistry()
	o, err := NewWith(reg, clock.New(100), Sine)
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("Extra", WhiteNoise(7)); err != nil {
		t.Fatal(err)
	}
	buf, err := o.Oscillate(clock.Span(0, 0.1), 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 10 {
		t.Errorf("len = %d, want 10", len(buf))
	}
	if o.Wave() != Sine {
		t.Errorf("Wave() = %q, want Sine", o.Wave())
	}
}

func TestAddOscillatorDefaultRegistry(t *testing.T) {
	const name Wave = "TestOnlyPulse"
	if err := AddOscillator(name, Pulse(0.1)); err != nil {
		t.Fatalf("AddOscillator: %v", err)
	}
	found := false
	for _, n := range Names() {
		if n == name {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() does not contain %q", name)
	}
	if _, err := New(name); err != nil {
		t.Errorf("New(%q): %v", name, err)
	}
}
