//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"terragen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type climateProvider interface {
	TemperatureMask() []float64
	HumidityMask() []float64
}

// Overlay tints the preview with the climate fields. Key 1 toggles
// temperature and key 2 toggles humidity.
type Overlay struct {
	sim             core.Sim
	scale           int
	showTemperature bool
	showHumidity    bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs an overlay for sim drawn at the given scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: max(scale, 1)}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showTemperature = !o.showTemperature
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHumidity = !o.showHumidity
	}
}

// Draw renders the enabled tints onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	p, ok := o.sim.(climateProvider)
	if !ok {
		return
	}
	if o.showTemperature {
		o.drawMask(screen, p.TemperatureMask(), color.RGBA{R: 255, G: 90, B: 40})
	}
	if o.showHumidity {
		o.drawMask(screen, p.HumidityMask(), color.RGBA{R: 64, G: 164, B: 223})
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float64, tint color.RGBA) {
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 || len(mask) != total {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}
	const maxAlpha = 150.0
	for i, v := range mask {
		base := i * 4
		intensity := min(max(v, 0), 1)
		a := math.Round(maxAlpha * intensity)
		// Premultiplied alpha.
		o.buf[base+0] = uint8(float64(tint.R) * a / 255)
		o.buf[base+1] = uint8(float64(tint.G) * a / 255)
		o.buf[base+2] = uint8(float64(tint.B) * a / 255)
		o.buf[base+3] = uint8(a)
	}
	o.img.WritePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
