// Package render turns palette-indexed preview grids into pixels.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// FillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Indices past the end of the palette take its last color; an empty palette
// clears the buffer to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Ramp returns n colors interpolated linearly from a to b.
func Ramp(a, b color.RGBA, n int) []color.RGBA {
	if n <= 1 {
		return []color.RGBA{a}
	}
	out := make([]color.RGBA, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = color.RGBA{
			R: lerp8(a.R, b.R, t),
			G: lerp8(a.G, b.G, t),
			B: lerp8(a.B, b.B, t),
			A: lerp8(a.A, b.A, t),
		}
	}
	return out
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Quantize maps every value onto levels buckets spanning [lo, hi] and
// writes the bucket index into dst. Values outside the span land in the end
// buckets; a degenerate span maps everything to bucket 0.
func Quantize(dst []uint8, values []float64, lo, hi float64, levels int) {
	levels = min(max(levels, 1), 256)
	span := hi - lo
	for i, v := range values {
		if span <= 0 {
			dst[i] = 0
			continue
		}
		idx := int((v - lo) / span * float64(levels))
		dst[i] = uint8(min(max(idx, 0), levels-1))
	}
}

// PaletteImage renders cells as a w x h RGBA image.
func PaletteImage(w, h int, cells []uint8, palette []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(cells) == w*h {
		FillPaletteRGBA(img.Pix, cells, palette)
	}
	return img
}

// Upscale enlarges img by an integer factor with nearest-neighbour
// sampling so individual cells stay crisp.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
