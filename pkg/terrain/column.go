package terrain

import (
	"terragen/pkg/biome"
)

// Column classifies the voxels of column (x, y) from z = 0 up to the higher
// of the column height and sea level. Index z of the result is voxel z;
// carved caves and empty cells are biome.Void. Column returns nil before
// the first generation.
func (t *Terrain) Column(x, y int) []biome.Material {
	if !t.built {
		return nil
	}
	cfg := t.cfg
	height := t.fields.Height.At(x, y)
	top := max(height, cfg.Biome.SeaLevel)
	out := make([]biome.Material, top)
	for z := range out {
		out[z] = biome.Classify(t.sample(x, y, z, height), cfg.Biome)
	}
	return out
}

// Surface returns the topmost solid material of column (x, y), or
// biome.Void when the column is empty.
func (t *Terrain) Surface(x, y int) biome.Material {
	col := t.Column(x, y)
	for z := len(col) - 1; z >= 0; z-- {
		if col[z].Solid() {
			return col[z]
		}
	}
	return biome.Void
}

// Voxels calls fn for every solid voxel, x outer, y, then z inner.
func (t *Terrain) Voxels(fn func(x, y, z int, m biome.Material)) {
	if !t.built {
		return
	}
	for x := 0; x < t.cfg.Length; x++ {
		for y := 0; y < t.cfg.Width; y++ {
			for z, m := range t.Column(x, y) {
				if m.Solid() {
					fn(x, y, z, m)
				}
			}
		}
	}
}

// Density samples the cave noise for voxel (x, y, z) of the current grid.
// It returns 0 before the first generation.
func (t *Terrain) Density(x, y, z int) float64 {
	if !t.built {
		return 0
	}
	scale := float64(t.cfg.Noise.Scale)
	w := t.world
	return w.Density(
		float64(x)/float64(t.cfg.Length)*scale+w.OffsetX,
		float64(y)/float64(t.cfg.Width)*scale+w.OffsetY,
		float64(z)/float64(w.MaxHeight())*scale+w.OffsetZ,
	)
}

func (t *Terrain) sample(x, y, z, height int) biome.Sample {
	s := biome.Sample{
		Z:           z,
		Height:      height,
		Temperature: t.fields.Temperature.At(x, y),
		Humidity:    t.fields.Humidity.At(x, y),
	}
	if z < height {
		s.Density = t.Density(x, y, z)
	}
	return s
}
