package landform

import (
	"image/color"

	"terragen/internal/render"
	"terragen/pkg/biome"
)

const rampLevels = 32

var materialColors = [...]color.RGBA{
	biome.Void:         {R: 8, G: 8, B: 12, A: 255},
	biome.Rock:         {R: 110, G: 106, B: 100, A: 255},
	biome.Water:        {R: 38, G: 86, B: 160, A: 255},
	biome.Cold:         {R: 226, G: 236, B: 242, A: 255},
	biome.ColdDry:      {R: 150, G: 160, B: 150, A: 255},
	biome.Temperate:    {R: 72, G: 142, B: 60, A: 255},
	biome.TemperateDry: {R: 164, G: 170, B: 84, A: 255},
	biome.Hot:          {R: 30, G: 104, B: 44, A: 255},
	biome.HotDry:       {R: 222, G: 190, B: 120, A: 255},
}

var (
	surfacePalette     = materialColors[:]
	heightPalette      = render.Ramp(color.RGBA{R: 20, G: 20, B: 24, A: 255}, color.RGBA{R: 245, G: 245, B: 240, A: 255}, rampLevels)
	temperaturePalette = render.Ramp(color.RGBA{R: 40, G: 70, B: 200, A: 255}, color.RGBA{R: 220, G: 60, B: 30, A: 255}, rampLevels)
	humidityPalette    = render.Ramp(color.RGBA{R: 200, G: 170, B: 110, A: 255}, color.RGBA{R: 20, G: 90, B: 200, A: 255}, rampLevels)
)

func (s *Sim) repaint() {
	fields := s.terrain.Fields()
	size := s.Size()
	total := size.W * size.H
	if cap(s.cells) < total {
		s.cells = make([]uint8, total)
	}
	s.cells = s.cells[:total]

	switch s.view {
	case ViewHeight:
		heights := make([]float64, total)
		for i, h := range fields.Height.Cells() {
			heights[i] = float64(h)
		}
		render.Quantize(s.cells, heights, 0, float64(s.terrain.World().MaxHeight()), rampLevels)
		s.palette = heightPalette
	case ViewTemperature:
		render.Quantize(s.cells, fields.Temperature.Cells(), 0, 1, rampLevels)
		s.palette = temperaturePalette
	case ViewHumidity:
		render.Quantize(s.cells, fields.Humidity.Cells(), 0, 1, rampLevels)
		s.palette = humidityPalette
	default:
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				s.cells[y*size.W+x] = uint8(s.terrain.Surface(x, y))
			}
		}
		s.palette = surfacePalette
	}
}
