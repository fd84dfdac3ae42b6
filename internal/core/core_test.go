package core

import (
	"errors"
	"image/color"
	"slices"
	"testing"
	"time"
)

type fakeSim struct {
	view string
}

func (s *fakeSim) Name() string          { return "fake" }
func (s *fakeSim) Size() Size            { return Size{W: 1, H: 1} }
func (s *fakeSim) Reset(int64)           {}
func (s *fakeSim) Step()                 {}
func (s *fakeSim) Cells() []uint8        { return []uint8{0} }
func (s *fakeSim) Palette() []color.RGBA { return []color.RGBA{{}} }
func (s *fakeSim) Views() []string       { return []string{"a", "b", "c"} }
func (s *fakeSim) View() string          { return s.view }
func (s *fakeSim) SetView(v string) bool { s.view = v; return true }

func TestRegistry(t *testing.T) {
	Register("zz-fake", func(map[string]string) (Sim, error) { return &fakeSim{}, nil })
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	defer delete(sims, "zz-fake")

	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name was registered")
	}
	names := Names()
	if !slices.IsSorted(names) || !slices.Contains(names, "zz-fake") {
		t.Fatalf("Names() = %v", names)
	}
	if _, err := New("zz-fake", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := New("missing", nil); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("err = %v, want ErrUnknownSim", err)
	}
}

func TestCycleView(t *testing.T) {
	s := &fakeSim{view: "b"}
	if got := CycleView(s); got != "c" {
		t.Fatalf("CycleView from b = %q", got)
	}
	if got := CycleView(s); got != "a" {
		t.Fatalf("CycleView wraps to %q", got)
	}
}

func TestParameterValues(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "grid", Params: []Parameter{IntParam("length", "Length", 64, "")}},
		{Name: "biome", Params: []Parameter{FloatParam("sea", "Sea", 0.25, ""), EnumParam("noise", "Noise", "random", []string{"random"}, "")}},
	}}
	vals := snap.Values()
	if vals["length"] != "64" || vals["sea"] != "0.25" || vals["noise"] != "random" {
		t.Fatalf("Values() = %v", vals)
	}
	if p, ok := snap.Lookup("noise"); !ok || p.Type != ParamTypeEnum {
		t.Fatalf("Lookup(noise) = %+v, %v", p, ok)
	}

	n := 1
	f := 0.0
	var seed int64
	cfg := map[string]string{"n": "7", "f": "0.5", "seed": "-3"}
	if err := IntValue(cfg, "n", &n); err != nil || n != 7 {
		t.Fatalf("IntValue = %d, %v", n, err)
	}
	if err := FloatValue(cfg, "f", &f); err != nil || f != 0.5 {
		t.Fatalf("FloatValue = %v, %v", f, err)
	}
	if err := Int64Value(cfg, "seed", &seed); err != nil || seed != -3 {
		t.Fatalf("Int64Value = %v, %v", seed, err)
	}
	if err := IntValue(cfg, "missing", &n); err != nil || n != 7 {
		t.Fatal("missing key should leave dst untouched")
	}
	if err := IntValue(map[string]string{"n": "x"}, "n", &n); !errors.Is(err, ErrBadParameter) {
		t.Fatalf("err = %v, want ErrBadParameter", err)
	}
}

func TestFixedStep(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first tick should fire")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before a full step elapsed")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after a full step")
	}
	clock = clock.Add(10 * time.Second)
	if !fs.ShouldStep() || fs.ShouldStep() {
		t.Fatal("stall backlog should collapse into a single tick")
	}
	if fs.TPS() != 10 {
		t.Fatalf("TPS = %d", fs.TPS())
	}
	fs.SetTPS(0)
	if fs.TPS() != 60 {
		t.Fatalf("TPS after SetTPS(0) = %d", fs.TPS())
	}
}
