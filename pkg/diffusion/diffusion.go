// Package diffusion implements the toroidal 4-neighbour smoothing operators
// shared by the climate fields and DLA accumulation.
package diffusion

import (
	"github.com/go-gl/mathgl/mgl64"

	"terragen/pkg/core"
)

// Blur averages every cell with its four toroidal neighbours into a new
// field. The input is left untouched.
func Blur(f *core.Field) *core.Field {
	out := core.NewField(f.W, f.H)
	src := f.Cells()
	dst := out.Cells()
	w, h := f.W, f.H
	for y := 0; y < h; y++ {
		up := core.Wrap(y-1, h) * w
		down := core.Wrap(y+1, h) * w
		row := y * w
		for x := 0; x < w; x++ {
			left := core.Wrap(x-1, w)
			right := core.Wrap(x+1, w)
			sum := src[row+x] + src[row+left] + src[row+right] + src[up+x] + src[down+x]
			dst[row+x] = sum / 5
		}
	}
	return out
}

var neighbours = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Expand spreads each cell into its four neighbours in place. Cells are
// visited x outer, y inner; each is clamped to [0, 1] and a quarter of the
// clamped value is added to every neighbour in the same buffer, so cells
// visited later already carry contributions from earlier ones. Use
// ExpandBuffered for the order-independent variant.
func Expand(f *core.Field) {
	cells := f.Cells()
	w, h := f.W, f.H
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			i := y*w + x
			cells[i] = mgl64.Clamp(cells[i], 0, 1)
			share := cells[i] * 0.25
			for _, d := range neighbours {
				cells[core.Wrap(y+d[1], h)*w+core.Wrap(x+d[0], w)] += share
			}
		}
	}
}

// ExpandBuffered is the double-buffered form of Expand: every cell is
// clamped first and contributions are read from that snapshot only.
func ExpandBuffered(f *core.Field) *core.Field {
	clamped := f.Clone()
	src := clamped.Cells()
	for i, v := range src {
		src[i] = mgl64.Clamp(v, 0, 1)
	}
	out := clamped.Clone()
	dst := out.Cells()
	w, h := f.W, f.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			share := src[y*w+x] * 0.25
			for _, d := range neighbours {
				dst[core.Wrap(y+d[1], h)*w+core.Wrap(x+d[0], w)] += share
			}
		}
	}
	return out
}
