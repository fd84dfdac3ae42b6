// Package landform previews the noise-driven terrain: surface materials,
// heights and both climate fields.
package landform

import (
	"fmt"
	"image/color"

	"terragen/internal/core"
	"terragen/pkg/biome"
	"terragen/pkg/terrain"
)

// Sim adapts a terrain.Terrain to core.Sim. Parameter setters stage their
// changes; Step applies them through Regenerate so only stale fields are
// rebuilt.
type Sim struct {
	terrain *terrain.Terrain
	pending terrain.Config
	view    View

	cells   []uint8
	palette []color.RGBA
	lastErr error
}

// New builds the world and runs the first generation.
func New(cfg Config) (*Sim, error) {
	world, err := terrain.NewWorld(cfg.World)
	if err != nil {
		return nil, err
	}
	t := terrain.New(world)
	if _, err := t.Generate(cfg.Terrain); err != nil {
		return nil, err
	}
	s := &Sim{terrain: t, pending: cfg.Terrain, view: cfg.View}
	s.repaint()
	return s, nil
}

// Name returns the sim identifier.
func (s *Sim) Name() string { return "landform" }

// Size returns the current grid dimensions.
func (s *Sim) Size() core.Size {
	c := s.terrain.Config()
	return core.Size{W: c.Length, H: c.Width}
}

// Cells exposes the palette indices of the current view.
func (s *Sim) Cells() []uint8 { return s.cells }

// Palette returns the colors of the current view.
func (s *Sim) Palette() []color.RGBA { return s.palette }

// Reset reseeds the world and rebuilds every field, applying any staged
// parameter changes on the way.
func (s *Sim) Reset(seed int64) {
	s.terrain.World().Reseed(seed)
	if _, err := s.terrain.Generate(s.pending); err != nil {
		s.fail(err)
	} else {
		s.lastErr = nil
	}
	s.repaint()
}

// Step applies staged parameter changes. It does nothing when nothing is
// staged.
func (s *Sim) Step() {
	if s.pending == s.terrain.Config() {
		return
	}
	if _, err := s.terrain.Regenerate(s.pending); err != nil {
		s.fail(err)
	} else {
		s.lastErr = nil
	}
	s.repaint()
}

func (s *Sim) fail(err error) {
	s.lastErr = err
	s.pending = s.terrain.Config()
}

// Err returns the error of the last rejected regeneration, if any.
func (s *Sim) Err() error { return s.lastErr }

// Terrain exposes the underlying generator.
func (s *Sim) Terrain() *terrain.Terrain { return s.terrain }

// Column classifies the voxels of column (x, y).
func (s *Sim) Column(x, y int) []biome.Material { return s.terrain.Column(x, y) }

// Views lists the paintable fields.
func (s *Sim) Views() []string { return append([]string(nil), viewNames[:]...) }

// View returns the name of the painted field.
func (s *Sim) View() string { return s.view.String() }

// SetView switches the painted field.
func (s *Sim) SetView(name string) bool {
	v, err := ParseView(name)
	if err != nil {
		return false
	}
	s.view = v
	s.repaint()
	return true
}

// Status summarizes the seed, the view and the last rejected change.
func (s *Sim) Status() string {
	msg := fmt.Sprintf("seed %d, %s view", s.terrain.World().Seed(), s.view)
	if s.lastErr != nil {
		msg += ": " + s.lastErr.Error()
	}
	return msg
}

// TemperatureMask returns the temperature field for overlays.
func (s *Sim) TemperatureMask() []float64 { return s.terrain.Fields().Temperature.Cells() }

// HumidityMask returns the humidity field for overlays.
func (s *Sim) HumidityMask() []float64 { return s.terrain.Fields().Humidity.Cells() }

func init() {
	core.Register("landform", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
