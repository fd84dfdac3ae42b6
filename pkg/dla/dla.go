// Package dla grows a diffusion-limited aggregate on an expanding toroidal
// grid and accumulates every growth stage into a blurred height map.
package dla

import (
	"errors"
	"fmt"

	"terragen/pkg/core"
	"terragen/pkg/diffusion"
)

// ErrInvalidConfiguration reports a Config that cannot drive the engine.
var ErrInvalidConfiguration = errors.New("dla: invalid configuration")

const (
	startSize = 4
	padding   = 2
)

// Config controls the size of the accumulation map and how full each growth
// stage gets before it is accumulated.
type Config struct {
	MaxLength int
	MaxWidth  int
	Density   float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{MaxLength: 64, MaxWidth: 64, Density: 0.5}
}

// Validate checks dimensions and density.
func (c Config) Validate() error {
	if c.MaxLength < startSize || c.MaxLength%4 != 0 {
		return fmt.Errorf("%w: max length %d must be a positive multiple of 4", ErrInvalidConfiguration, c.MaxLength)
	}
	if c.MaxWidth < startSize || c.MaxWidth%4 != 0 {
		return fmt.Errorf("%w: max width %d must be a positive multiple of 4", ErrInvalidConfiguration, c.MaxWidth)
	}
	if !(c.Density > 0 && c.Density < 1) {
		return fmt.Errorf("%w: density %v must lie in (0,1)", ErrInvalidConfiguration, c.Density)
	}
	return nil
}

// Stages returns the number of stages a full run of cfg performs.
func (c Config) Stages() int {
	return min(c.MaxLength, c.MaxWidth) / 4
}

// Engine is the staged DLA growth state machine. It is not safe for
// concurrent use.
type Engine struct {
	cfg Config
	src core.Source

	grid    *core.ByteGrid
	count   int
	stage   int
	heights *core.Field
}

// New validates cfg and returns an engine holding a 4x4 grid with a single
// particle at (2, 2).
func New(cfg Config, src core.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, src: src}
	e.Reset()
	return e, nil
}

// Reset discards all growth and accumulation. The random source is not
// reseeded.
func (e *Engine) Reset() {
	e.grid = core.NewByteGrid(startSize, startSize)
	e.grid.Set(startSize/2, startSize/2, 1)
	e.count = 1
	e.stage = 0
	e.heights = core.NewField(e.cfg.MaxLength, e.cfg.MaxWidth)
}

// Done reports whether the grid has outgrown the configured maxima.
func (e *Engine) Done() bool {
	return e.grid.W > e.cfg.MaxLength || e.grid.H > e.cfg.MaxWidth
}

// Step runs one growth stage: fill the grid to the target density, add it
// to the centered region of the height map, blur the map and pad the grid
// by two cells per side. It reports whether another stage remains.
func (e *Engine) Step() bool {
	if e.Done() {
		return false
	}
	e.count = AddParticle2D(e.grid, e.count, e.cfg.Density, e.src)

	offX := (e.cfg.MaxLength - e.grid.W) / 2
	offY := (e.cfg.MaxWidth - e.grid.H) / 2
	for y := 0; y < e.grid.H; y++ {
		for x := 0; x < e.grid.W; x++ {
			if v := e.grid.At(x, y); v != 0 {
				e.heights.Add(x+offX, y+offY, float64(v))
			}
		}
	}
	e.heights = diffusion.Blur(e.heights)

	e.grid = e.grid.Pad(padding)
	e.stage++
	return !e.Done()
}

// Run steps until the engine is done and returns the accumulated map.
func (e *Engine) Run() *core.Field {
	for e.Step() {
	}
	return e.heights
}

// Heights returns the accumulation map as of the last completed stage.
func (e *Engine) Heights() *core.Field { return e.heights }

// Grid returns the occupancy grid the next stage will grow.
func (e *Engine) Grid() *core.ByteGrid { return e.grid }

// Particles reports how many cells are occupied.
func (e *Engine) Particles() int { return e.count }

// Stage reports how many stages have completed.
func (e *Engine) Stage() int { return e.stage }

// AddParticle2D injects random-walk particles into grid until the occupied
// fraction number/(W*H) reaches density and returns the new particle count.
// The grid must hold at least one occupied cell and a free cell whenever a
// particle is still owed.
func AddParticle2D(grid *core.ByteGrid, number int, density float64, src core.Source) int {
	total := float64(grid.W * grid.H)
	for float64(number)/total < density {
		addParticle(grid, src)
		number++
	}
	return number
}

func addParticle(grid *core.ByteGrid, src core.Source) {
	w, h := grid.W, grid.H
	x := core.FloorIndex(src.NextDouble(), w)
	y := core.FloorIndex(src.NextDouble(), h)
	for grid.At(x, y) != 0 {
		x = core.FloorIndex(src.NextDouble(), w)
		y = core.FloorIndex(src.NextDouble(), h)
	}

	for !touching(grid, x, y) {
		switch core.FloorIndex(src.NextDouble(), 4) {
		case 0:
			x = core.Wrap(x+1, w)
		case 1:
			x = core.Wrap(x-1, w)
		case 2:
			y = core.Wrap(y+1, h)
		case 3:
			y = core.Wrap(y-1, h)
		}
	}
	grid.Set(x, y, 1)
}

func touching(grid *core.ByteGrid, x, y int) bool {
	return grid.At(x+1, y) != 0 || grid.At(x-1, y) != 0 || grid.At(x, y+1) != 0 || grid.At(x, y-1) != 0
}
