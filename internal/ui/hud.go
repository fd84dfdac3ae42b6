//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"slices"
	"strconv"
	"strings"

	"terragen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the parameter panel to the right of the preview.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	pixel *ebiten.Image

	snapshot core.ParameterSnapshot
	controls []control
	offsetX  int
}

type control struct {
	core.ParameterControl
	param    core.Parameter
	hasValue bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// NewHUD constructs a HUD for sim with a panel of the given width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range p.ParameterControls() {
			top := controlsTop + i*lineHeight
			by := top + (lineHeight-buttonSize)/2
			plus := image.Rect(h.width-panelPadding-buttonSize, by, h.width-panelPadding, by+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, control{ParameterControl: ctrl, top: top, minus: minus, plus: plus})
		}
	}
	return h
}

// Update refreshes parameter values and handles clicks on the panel, which
// starts at panelOffsetX in screen space.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	p, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	h.snapshot = p.Parameters()
	for i := range h.controls {
		c := &h.controls[i]
		c.param, c.hasValue = h.snapshot.Lookup(c.Key)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case !c.hasValue:
		case image.Pt(px, my).In(c.minus):
			h.adjust(c, -1)
			return
		case image.Pt(px, my).In(c.plus):
			h.adjust(c, 1)
			return
		}
	}
}

// adjust moves a control one step in direction and hands the result to the
// sim's setter. Values outside the control's bounds are not offered.
func (h *HUD) adjust(c *control, direction int) bool {
	switch c.Type {
	case core.ParamTypeInt:
		setter, ok := h.sim.(core.IntParameterSetter)
		cur, err := strconv.Atoi(c.param.Value)
		if !ok || err != nil {
			return false
		}
		step := max(int(math.Round(c.Step)), 1)
		target := cur + direction*step
		if (c.HasMin && target < int(math.Round(c.Min))) || (c.HasMax && target > int(math.Round(c.Max))) {
			return false
		}
		return setter.SetIntParameter(c.Key, target)
	case core.ParamTypeFloat:
		setter, ok := h.sim.(core.FloatParameterSetter)
		cur, err := strconv.ParseFloat(c.param.Value, 64)
		if !ok || err != nil {
			return false
		}
		step := c.Step
		if step <= 0 {
			step = 0.05
		}
		// Round to the step grid so repeated clicks do not drift.
		target := math.Round((cur+float64(direction)*step)/step) * step
		if (c.HasMin && target < c.Min-1e-9) || (c.HasMax && target > c.Max+1e-9) {
			return false
		}
		return setter.SetFloatParameter(c.Key, target)
	case core.ParamTypeEnum:
		setter, ok := h.sim.(core.EnumParameterSetter)
		choices := c.param.Choices
		if !ok || len(choices) == 0 {
			return false
		}
		i := slices.Index(choices, c.param.Value)
		next := ((i+direction)%len(choices) + len(choices)) % len(choices)
		return setter.SetEnumParameter(c.Key, choices[next])
	}
	return false
}

// Draw paints the panel at offsetX. The panel is as tall as the scaled
// preview.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, title(h.sim.Name()), face, panelPadding, y, titleColor)
	if vs, ok := h.sim.(core.ViewSelector); ok {
		text.Draw(h.panel, "view: "+vs.View()+" (V)", face, panelPadding, y+14, dimColor)
	}
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y+infoSpacing, dimColor)
	}
	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}
	if sp, ok := h.sim.(core.StatusProvider); ok {
		text.Draw(h.panel, sp.Status(), face, panelPadding, height-panelPadding, dimColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(c *control) {
	face := basicfont.Face7x13
	baseline := c.top + labelBaseline
	text.Draw(h.panel, c.Label, face, panelPadding, baseline, textColor)

	value, col := "--", dimColor
	if c.hasValue {
		value, col = c.param.Value, textColor
		if c.Type == core.ParamTypeFloat {
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				value = strconv.FormatFloat(f, 'f', 2, 64)
			}
		}
	}
	width := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, c.minus.Min.X-buttonGap-width, baseline, col)

	h.drawButton(c.minus, "-", c.hasValue)
	h.drawButton(c.plus, "+", c.hasValue)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func title(name string) string {
	if name == "" {
		return "Controls"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " controls"
}

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 21
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 24
)
