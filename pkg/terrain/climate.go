package terrain

import (
	"math"

	"terragen/pkg/core"
	"terragen/pkg/diffusion"
)

// BuildTemperature samples the builtin noise at a scale and offset drawn
// fresh from the world's stream on every call (scale, then offset x, then
// offset y) and blurs the result once. Values are not reclamped after the
// blur.
func BuildTemperature(w *World, length, width int) *core.Field {
	src := w.Source()
	scale := math.Floor(src.NextDouble() * float64(length))
	offX := src.NextDouble() * float64(length)
	offY := src.NextDouble() * float64(width)

	builtin := w.Builtin()
	f := core.NewField(length, width)
	for y := 0; y < width; y++ {
		for x := 0; x < length; x++ {
			f.Set(x, y, builtin(float64(x)/float64(length)*scale+offX, float64(y)/float64(width)*scale+offY))
		}
	}
	return diffusion.Blur(f)
}

// BuildHumidity marks every column below seaLevel as saturated and spreads
// the moisture with two Expand passes.
func BuildHumidity(height *core.HeightField, seaLevel int, mode ExpandMode) *core.Field {
	f := core.NewField(height.W, height.H)
	for i, h := range height.Cells() {
		if h < seaLevel {
			f.Cells()[i] = 1
		}
	}
	for pass := 0; pass < 2; pass++ {
		if mode == ExpandBuffered {
			f = diffusion.ExpandBuffered(f)
			continue
		}
		diffusion.Expand(f)
	}
	return f
}
