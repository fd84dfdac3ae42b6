package terrain

import (
	"fmt"
	"math"

	"terragen/pkg/core"
	"terragen/pkg/noise"
)

// RandomField draws one uniform sample per cell, x outer and y inner.
func RandomField(src core.Source, length, width int) *core.Field {
	f := core.NewField(length, width)
	for x := 0; x < length; x++ {
		for y := 0; y < width; y++ {
			f.Set(x, y, src.NextDouble())
		}
	}
	return f
}

// BuildHeight produces the column heights for a length x width grid. The
// Random and Random4 types read random, which must match the grid size, and
// bypass redistribution; the gradient types sample the world's noise at
// (x/length)*scale + OffsetX, (y/width)*scale + OffsetY and then
// redistribute. Heights are floor(value * MaxHeight).
func BuildHeight(w *World, length, width int, np NoiseParams, lp LandformParams, random *core.Field) (*core.HeightField, error) {
	sample, err := heightSampler(w, length, width, np, random)
	if err != nil {
		return nil, err
	}
	redistribute := np.Type != Random && np.Type != Random4
	top := w.MaxHeight() - 1
	maxHeight := float64(w.MaxHeight())

	out := core.NewHeightField(length, width)
	for y := 0; y < width; y++ {
		for x := 0; x < length; x++ {
			v := sample(x, y)
			if redistribute {
				if v, err = Redistribute(v, x, y, length, width, lp); err != nil {
					return nil, err
				}
			}
			out.Set(x, y, min(int(math.Floor(v*maxHeight)), top))
		}
	}
	return out, nil
}

func heightSampler(w *World, length, width int, np NoiseParams, random *core.Field) (func(x, y int) float64, error) {
	switch np.Type {
	case Random, Random4:
		if random == nil || random.W != length || random.H != width {
			return nil, fmt.Errorf("%w: random field does not match %dx%d grid", ErrInvalidConfiguration, length, width)
		}
		if np.Type == Random {
			return random.At, nil
		}
		return func(x, y int) float64 {
			return (random.At(x, y) + random.At(x+1, y) + random.At(x, y+1) + random.At(x+1, y+1)) * 0.25
		}, nil
	}

	var fn noise.Func
	switch np.Type {
	case Gradient:
		fn = w.Gradient
	case BuiltinGradient:
		fn = w.Builtin()
	case GradientFractal:
		fn = func(x, y float64) float64 { return noise.Fractal(w.Gradient, x, y, np.Octaves) }
	case BuiltinGradientFractal:
		builtin := w.Builtin()
		fn = func(x, y float64) float64 { return noise.Fractal(builtin, x, y, np.Octaves) }
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedNoiseType, np.Type)
	}
	scale := float64(np.Scale)
	return func(x, y int) float64 {
		return fn(float64(x)/float64(length)*scale+w.OffsetX, float64(y)/float64(width)*scale+w.OffsetY)
	}, nil
}
