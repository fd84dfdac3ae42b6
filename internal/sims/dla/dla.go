// Package dla previews diffusion-limited aggregation growth one stage per
// tick.
package dla

import (
	"fmt"
	"image/color"

	"terragen/internal/core"
	"terragen/internal/render"
	pcore "terragen/pkg/core"
	growth "terragen/pkg/dla"
)

// Config holds the growth parameters and the starting view.
type Config struct {
	Growth growth.Config
	Seed   int64
	View   string
}

// DefaultConfig returns the standard 64x64 preview.
func DefaultConfig() Config {
	return Config{Growth: growth.DefaultConfig(), Seed: 1337, View: viewHeights}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	for _, err := range []error{
		core.IntValue(cfg, "length", &c.Growth.MaxLength),
		core.IntValue(cfg, "width", &c.Growth.MaxWidth),
		core.FloatValue(cfg, "density", &c.Growth.Density),
		core.Int64Value(cfg, "seed", &c.Seed),
	} {
		if err != nil {
			return c, err
		}
	}
	if v, ok := cfg["view"]; ok {
		if v != viewHeights && v != viewGrid {
			return c, fmt.Errorf("%w: view=%q", core.ErrBadParameter, v)
		}
		c.View = v
	}
	return c, nil
}

const (
	viewHeights = "heights"
	viewGrid    = "grid"
	rampLevels  = 32
)

var (
	heightPalette = render.Ramp(color.RGBA{R: 12, G: 10, B: 30, A: 255}, color.RGBA{R: 250, G: 220, B: 140, A: 255}, rampLevels)
	gridPalette   = []color.RGBA{{R: 0, G: 0, B: 0, A: 255}, {R: 240, G: 240, B: 240, A: 255}}
)

// Sim wraps a growth engine seeded from its own random stream.
type Sim struct {
	cfg    growth.Config
	seed   int64
	view   string
	src    *pcore.RNG
	engine *growth.Engine
	cells  []uint8
}

// New validates cfg and prepares the first stage.
func New(cfg Config) (*Sim, error) {
	src := pcore.NewRNG(cfg.Seed)
	engine, err := growth.New(cfg.Growth, src)
	if err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg.Growth, seed: cfg.Seed, view: cfg.View, src: src, engine: engine}
	s.cells = make([]uint8, cfg.Growth.MaxLength*cfg.Growth.MaxWidth)
	s.repaint()
	return s, nil
}

// Name returns the sim identifier.
func (s *Sim) Name() string { return "dla" }

// Size returns the accumulation map dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.MaxLength, H: s.cfg.MaxWidth} }

// Cells exposes the palette indices of the current view.
func (s *Sim) Cells() []uint8 { return s.cells }

// Palette returns the colors of the current view.
func (s *Sim) Palette() []color.RGBA {
	if s.view == viewGrid {
		return gridPalette
	}
	return heightPalette
}

// Reset discards all growth and restarts the stream from seed.
func (s *Sim) Reset(seed int64) {
	s.seed = seed
	s.src.Seed(seed)
	s.engine.Reset()
	s.repaint()
}

// Step grows one stage. Finished runs stay put.
func (s *Sim) Step() {
	if s.engine.Done() {
		return
	}
	s.engine.Step()
	s.repaint()
}

// Done reports whether growth has finished.
func (s *Sim) Done() bool { return s.engine.Done() }

// Engine exposes the growth engine.
func (s *Sim) Engine() *growth.Engine { return s.engine }

// Views lists the paintable layers.
func (s *Sim) Views() []string { return []string{viewHeights, viewGrid} }

// View returns the painted layer.
func (s *Sim) View() string { return s.view }

// SetView switches between the height map and the occupancy grid.
func (s *Sim) SetView(name string) bool {
	if name != viewHeights && name != viewGrid {
		return false
	}
	s.view = name
	s.repaint()
	return true
}

// Status reports growth progress.
func (s *Sim) Status() string {
	state := "growing"
	if s.engine.Done() {
		state = "done"
	}
	return fmt.Sprintf("stage %d/%d, %d particles, %s", s.engine.Stage(), s.cfg.Stages(), s.engine.Particles(), state)
}

func (s *Sim) repaint() {
	if s.view == viewGrid {
		s.paintGrid()
		return
	}
	heights := s.engine.Heights()
	lo, hi := heights.Range()
	render.Quantize(s.cells, heights.Cells(), lo, hi, rampLevels)
}

// paintGrid centers the occupancy grid on the map, clipping a grid that
// has outgrown it.
func (s *Sim) paintGrid() {
	clear(s.cells)
	g := s.engine.Grid()
	w, h := s.cfg.MaxLength, s.cfg.MaxWidth
	offX := (w - g.W) / 2
	offY := (h - g.H) / 2
	for y := 0; y < g.H; y++ {
		ty := y + offY
		if ty < 0 || ty >= h {
			continue
		}
		for x := 0; x < g.W; x++ {
			tx := x + offX
			if tx < 0 || tx >= w {
				continue
			}
			s.cells[ty*w+tx] = g.At(x, y)
		}
	}
}

// Parameters reports the growth configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Growth", Params: []core.Parameter{
			core.IntParam("seed", "Seed", int(s.seed), "growth seed"),
			core.IntParam("length", "Length", s.cfg.MaxLength, "map cells along x, a multiple of 4"),
			core.IntParam("width", "Width", s.cfg.MaxWidth, "map cells along y, a multiple of 4"),
			core.FloatParam("density", "Density", s.cfg.Density, "occupied fraction reached each stage"),
		}},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "length", Label: "Length", Type: core.ParamTypeInt, Step: 4, Min: 8, Max: 256, HasMin: true, HasMax: true},
		{Key: "width", Label: "Width", Type: core.ParamTypeInt, Step: 4, Min: 8, Max: 256, HasMin: true, HasMax: true},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 0.95, HasMin: true, HasMax: true},
	}
}

// SetIntParameter resizes the map and restarts growth.
func (s *Sim) SetIntParameter(key string, value int) bool {
	next := s.cfg
	switch key {
	case "length":
		next.MaxLength = value
	case "width":
		next.MaxWidth = value
	default:
		return false
	}
	return s.rebuild(next)
}

// SetFloatParameter changes the density and restarts growth.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if key != "density" {
		return false
	}
	next := s.cfg
	next.Density = value
	return s.rebuild(next)
}

func (s *Sim) rebuild(cfg growth.Config) bool {
	engine, err := growth.New(cfg, s.src)
	if err != nil {
		return false
	}
	s.src.Seed(s.seed)
	s.cfg = cfg
	s.engine = engine
	s.cells = make([]uint8, cfg.MaxLength*cfg.MaxWidth)
	s.repaint()
	return true
}

func init() {
	core.Register("dla", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
