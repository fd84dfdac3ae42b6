package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/ojrac/opensimplex-go"
)

// Builtin names an off-the-shelf gradient noise implementation that can be
// plugged in wherever a Func is accepted.
type Builtin string

const (
	BuiltinPerlin  Builtin = "perlin"
	BuiltinSimplex Builtin = "simplex"
)

// NewBuiltin returns the provider registered under kind, seeded with seed.
func NewBuiltin(kind Builtin, seed int64) (Func, error) {
	switch kind {
	case BuiltinPerlin, "":
		return NewPerlin(seed), nil
	case BuiltinSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("noise: unknown builtin %q", kind)
	}
}

// NewPerlin wraps a single-octave go-perlin generator rescaled to [0, 1].
func NewPerlin(seed int64) Func {
	p := perlin.NewPerlin(2, 2, 1, seed)
	return func(x, y float64) float64 {
		return mgl64.Clamp((p.Noise2D(x, y)+1)*0.5, 0, 1)
	}
}

// NewSimplex wraps normalized OpenSimplex noise, which already lies in [0, 1).
func NewSimplex(seed int64) Func {
	n := opensimplex.NewNormalized(seed)
	return n.Eval2
}
