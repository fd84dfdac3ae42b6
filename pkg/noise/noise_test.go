package noise

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"terragen/pkg/core"
)

func TestGenerate2DUnitVectors(t *testing.T) {
	l := Generate2D(core.NewRNG(7), 8, 6)
	for x := 0; x < l.LX; x++ {
		for y := 0; y < l.LY; y++ {
			if n := l.Gradient(x, y).Len(); math.Abs(n-1) > 1e-12 {
				t.Fatalf("gradient (%d,%d) has length %v", x, y, n)
			}
		}
	}
}

func TestGenerate3DUnitVectors(t *testing.T) {
	l := Generate3D(core.NewRNG(7), 4, 4, 3)
	for x := 0; x < l.LX; x++ {
		for y := 0; y < l.LY; y++ {
			for z := 0; z < l.LZ; z++ {
				if n := l.Gradient(x, y, z).Len(); math.Abs(n-1) > 1e-12 {
					t.Fatalf("gradient (%d,%d,%d) has length %v", x, y, z, n)
				}
			}
		}
	}
}

func TestGenerateConsumesOneDrawPerCell(t *testing.T) {
	a := core.NewRNG(3)
	Generate2D(a, 5, 4)
	b := core.NewRNG(3)
	for i := 0; i < 20; i++ {
		b.NextDouble()
	}
	if a.NextDouble() != b.NextDouble() {
		t.Fatal("Generate2D should consume exactly one draw per cell")
	}

	a.Seed(3)
	Generate3D(a, 2, 2, 2)
	b.Seed(3)
	for i := 0; i < 16; i++ {
		b.NextDouble()
	}
	if a.NextDouble() != b.NextDouble() {
		t.Fatal("Generate3D should consume exactly two draws per cell")
	}
}

func TestValueAtLatticePointIsHalf(t *testing.T) {
	l := Uniform2D(4, 4, mgl64.Vec2{1, 0})
	for _, p := range [][2]float64{{0, 0}, {1, 2}, {3, 3}, {-2, 5}} {
		if v := l.Value(p[0], p[1]); v != 0.5 {
			t.Fatalf("Value(%v,%v)=%v, want 0.5", p[0], p[1], v)
		}
	}
}

func TestValueUsesRawFractionalWeights(t *testing.T) {
	// Opposing gradients along x: corner dots are dx and 1-dx, so the raw
	// blend is 2dx(1-dx). A fade curve would give a different value.
	l := &Lattice2D{LX: 2, LY: 2, g: []mgl64.Vec2{{1, 0}, {-1, 0}, {1, 0}, {-1, 0}}}
	if got := l.Value(0.25, 0.6); math.Abs(got-0.6875) > 1e-12 {
		t.Fatalf("Value(0.25,0.6)=%v, want 0.6875", got)
	}

	diag := Uniform2D(4, 4, mgl64.Vec2{1, 1})
	if got := diag.Value(0.3, 0.7); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("uniform gradients should cancel, got %v", got)
	}
}

func TestValueWrapsToroidally(t *testing.T) {
	l := Generate2D(core.NewRNG(11), 8, 8)
	for _, p := range [][2]float64{{0.3, 0.6}, {5.5, 2.25}, {7.9, 7.9}} {
		a := l.Value(p[0], p[1])
		b := l.Value(p[0]+8, p[1]-16)
		if math.Abs(a-b) > 1e-12 {
			t.Fatalf("Value not periodic at %v: %v vs %v", p, a, b)
		}
		if a < 0 || a > 1 {
			t.Fatalf("Value out of range: %v", a)
		}
	}
}

func TestValue3DRangeAndPeriod(t *testing.T) {
	l := Generate3D(core.NewRNG(5), 4, 4, 4)
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 0.11
		z := float64(i) * 0.53
		v := l.Value(x, y, z)
		if v < 0 || v > 1 {
			t.Fatalf("Value3D out of range at %d: %v", i, v)
		}
		if w := l.Value(x-4, y+8, z+4); math.Abs(v-w) > 1e-9 {
			t.Fatalf("Value3D not periodic at %d: %v vs %v", i, v, w)
		}
	}
	if v := l.Value(1, 2, 3); math.Abs(v-0.5) > 1e-12 {
		t.Fatalf("Value3D at lattice point = %v, want 0.5", v)
	}
}

func TestFractalNormalizesAmplitudes(t *testing.T) {
	constant := func(x, y float64) float64 { return 0.8 }
	for octaves := 1; octaves <= 6; octaves++ {
		if v := Fractal(constant, 1, 2, octaves); math.Abs(v-0.8) > 1e-12 {
			t.Fatalf("Fractal of constant with %d octaves = %v", octaves, v)
		}
	}

	var freqs []float64
	probe := func(x, y float64) float64 {
		freqs = append(freqs, x)
		return 0
	}
	Fractal(probe, 1, 1, 4)
	want := []float64{1, 2, 4, 8}
	for i := range want {
		if freqs[i] != want[i] {
			t.Fatalf("octave %d sampled at %v, want %v", i, freqs[i], want[i])
		}
	}
}

func TestFractalWeights(t *testing.T) {
	// First octave returns 1, the rest 0: weight 1/(1+0.5) for two octaves.
	calls := 0
	fn := func(x, y float64) float64 {
		calls++
		if calls == 1 {
			return 1
		}
		return 0
	}
	if v := Fractal(fn, 0, 0, 2); math.Abs(v-1/1.5) > 1e-12 {
		t.Fatalf("Fractal weighting = %v, want %v", v, 1/1.5)
	}
}

func TestBuiltinProvidersStayInRange(t *testing.T) {
	for _, kind := range []Builtin{BuiltinPerlin, BuiltinSimplex} {
		fn, err := NewBuiltin(kind, 99)
		if err != nil {
			t.Fatalf("NewBuiltin(%q): %v", kind, err)
		}
		again, _ := NewBuiltin(kind, 99)
		for i := 0; i < 100; i++ {
			x, y := float64(i)*0.173, float64(i)*0.291
			v := fn(x, y)
			if v < 0 || v > 1 {
				t.Fatalf("%s out of range: %v", kind, v)
			}
			if again(x, y) != v {
				t.Fatalf("%s not deterministic for the same seed", kind)
			}
		}
	}
	if _, err := NewBuiltin("value", 1); err == nil {
		t.Fatal("expected error for unknown builtin")
	}
}
