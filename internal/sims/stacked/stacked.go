// Package stacked previews the stacked random landform: sparse random
// layers on a shrinking footprint, blurred after every layer.
package stacked

import (
	"fmt"
	"image/color"

	"terragen/internal/core"
	"terragen/internal/render"
	pcore "terragen/pkg/core"
	"terragen/pkg/terrain"
)

// Config holds the layer parameters and seed.
type Config struct {
	Stacked terrain.StackedConfig
	Seed    int64
}

// DefaultConfig returns the standard 68x68 preview.
func DefaultConfig() Config {
	return Config{Stacked: terrain.DefaultStackedConfig(), Seed: 1337}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	for _, err := range []error{
		core.IntValue(cfg, "index", &c.Stacked.Index),
		core.IntValue(cfg, "layers", &c.Stacked.Layers),
		core.FloatValue(cfg, "sparsity", &c.Stacked.Sparsity),
		core.Int64Value(cfg, "seed", &c.Seed),
	} {
		if err != nil {
			return c, err
		}
	}
	return c, nil
}

const rampLevels = 32

var palette = render.Ramp(color.RGBA{R: 16, G: 40, B: 24, A: 255}, color.RGBA{R: 236, G: 230, B: 200, A: 255}, rampLevels)

// Sim deposits one layer per Step.
type Sim struct {
	cfg     terrain.StackedConfig
	seed    int64
	src     *pcore.RNG
	builder *terrain.Stacked
	cells   []uint8
}

// New validates cfg and returns an empty map.
func New(cfg Config) (*Sim, error) {
	src := pcore.NewRNG(cfg.Seed)
	b, err := terrain.NewStacked(cfg.Stacked, src)
	if err != nil {
		return nil, err
	}
	size := cfg.Stacked.Size()
	s := &Sim{cfg: cfg.Stacked, seed: cfg.Seed, src: src, builder: b, cells: make([]uint8, size*size)}
	return s, nil
}

// Name returns the sim identifier.
func (s *Sim) Name() string { return "stacked" }

// Size returns the square map dimensions.
func (s *Sim) Size() core.Size {
	n := s.cfg.Size()
	return core.Size{W: n, H: n}
}

// Cells exposes the quantized map.
func (s *Sim) Cells() []uint8 { return s.cells }

// Palette returns the height ramp.
func (s *Sim) Palette() []color.RGBA { return palette }

// Reset clears the map and restarts the stream from seed.
func (s *Sim) Reset(seed int64) {
	s.seed = seed
	s.src.Seed(seed)
	s.builder.Reset()
	s.repaint()
}

// Step deposits the next layer.
func (s *Sim) Step() {
	if s.builder.Done() {
		return
	}
	s.builder.Step()
	s.repaint()
}

// Done reports whether every layer has been deposited.
func (s *Sim) Done() bool { return s.builder.Done() }

// Builder exposes the layer builder.
func (s *Sim) Builder() *terrain.Stacked { return s.builder }

// Status reports layer progress.
func (s *Sim) Status() string {
	return fmt.Sprintf("layer %d/%d", s.builder.Layer(), s.cfg.Layers)
}

func (s *Sim) repaint() {
	f := s.builder.Field()
	lo, hi := f.Range()
	render.Quantize(s.cells, f.Cells(), lo, hi, rampLevels)
}

// Parameters reports the layer configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Layers", Params: []core.Parameter{
			core.IntParam("seed", "Seed", int(s.seed), "layer seed"),
			core.IntParam("index", "Index", s.cfg.Index, "footprint shrink per layer"),
			core.IntParam("layers", "Layers", s.cfg.Layers, "number of deposits"),
			core.FloatParam("sparsity", "Sparsity", s.cfg.Sparsity, "chance a cell is skipped"),
		}},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "index", Label: "Index", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
		{Key: "layers", Label: "Layers", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
		{Key: "sparsity", Label: "Sparsity", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter changes the footprint and restarts the deposit.
func (s *Sim) SetIntParameter(key string, value int) bool {
	next := s.cfg
	switch key {
	case "index":
		next.Index = value
	case "layers":
		next.Layers = value
	default:
		return false
	}
	return s.rebuild(next)
}

// SetFloatParameter changes the sparsity and restarts the deposit.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if key != "sparsity" {
		return false
	}
	next := s.cfg
	next.Sparsity = value
	return s.rebuild(next)
}

func (s *Sim) rebuild(cfg terrain.StackedConfig) bool {
	b, err := terrain.NewStacked(cfg, s.src)
	if err != nil {
		return false
	}
	s.src.Seed(s.seed)
	s.cfg = cfg
	s.builder = b
	s.cells = make([]uint8, cfg.Size()*cfg.Size())
	return true
}

func init() {
	core.Register("stacked", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
