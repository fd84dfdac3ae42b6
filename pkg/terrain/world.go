package terrain

import (
	"fmt"

	"terragen/pkg/core"
	"terragen/pkg/noise"
)

// WorldConfig sizes the gradient lattices and picks the builtin noise.
type WorldConfig struct {
	Seed          int64
	LatticeLength int
	LatticeWidth  int
	// MaxHeight is both the voxel column ceiling and the depth of the 3D
	// lattice.
	MaxHeight int

	BuiltinKind noise.Builtin
	// Builtin overrides BuiltinKind when set. It must return values in
	// [0, 1] and is never reseeded by the world.
	Builtin noise.Func
	// Source overrides the default PCG stream when set.
	Source core.Source
}

// DefaultWorldConfig returns the standard 256x256x32 world.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Seed:          1337,
		LatticeLength: 256,
		LatticeWidth:  256,
		MaxHeight:     32,
		BuiltinKind:   noise.BuiltinPerlin,
	}
}

// World owns everything drawn once per seed: the random stream, the world
// space offsets and both gradient lattices. A World is not safe for
// concurrent use.
type World struct {
	cfg WorldConfig
	src core.Source

	seed int64

	OffsetX float64
	OffsetY float64
	OffsetZ float64

	lattice2 *noise.Lattice2D
	lattice3 *noise.Lattice3D
	builtin  noise.Func
}

// NewWorld validates cfg and seeds a world from cfg.Seed.
func NewWorld(cfg WorldConfig) (*World, error) {
	if cfg.LatticeLength <= 0 || cfg.LatticeWidth <= 0 || cfg.MaxHeight <= 0 {
		return nil, fmt.Errorf("%w: lattice %dx%dx%d must be positive",
			ErrInvalidConfiguration, cfg.LatticeLength, cfg.LatticeWidth, cfg.MaxHeight)
	}
	if cfg.Builtin == nil {
		if _, err := noise.NewBuiltin(cfg.BuiltinKind, cfg.Seed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
	}
	w := &World{cfg: cfg, src: cfg.Source}
	if w.src == nil {
		w.src = core.NewRNG(cfg.Seed)
	}
	w.Reseed(cfg.Seed)
	return w, nil
}

// Reseed restarts the random stream and redraws, in order, OffsetX,
// OffsetY, OffsetZ, the 2D lattice and the 3D lattice.
func (w *World) Reseed(seed int64) {
	w.seed = seed
	w.src.Seed(seed)

	w.OffsetX = w.src.NextDouble() * float64(w.cfg.LatticeLength)
	w.OffsetY = w.src.NextDouble() * float64(w.cfg.LatticeWidth)
	w.OffsetZ = w.src.NextDouble() * float64(w.cfg.MaxHeight)

	w.lattice2 = noise.Generate2D(w.src, w.cfg.LatticeLength, w.cfg.LatticeWidth)
	w.lattice3 = noise.Generate3D(w.src, w.cfg.LatticeLength, w.cfg.LatticeWidth, w.cfg.MaxHeight)

	w.builtin = w.cfg.Builtin
	if w.builtin == nil {
		// Kind was checked by NewWorld.
		w.builtin, _ = noise.NewBuiltin(w.cfg.BuiltinKind, seed)
	}
}

// Seed returns the seed of the last Reseed.
func (w *World) Seed() int64 { return w.seed }

// Source exposes the shared random stream.
func (w *World) Source() core.Source { return w.src }

// MaxHeight returns the voxel column ceiling.
func (w *World) MaxHeight() int { return w.cfg.MaxHeight }

// Config returns the configuration the world was built with.
func (w *World) Config() WorldConfig { return w.cfg }

// Gradient samples the 2D lattice.
func (w *World) Gradient(x, y float64) float64 { return w.lattice2.Value(x, y) }

// Density samples the 3D lattice.
func (w *World) Density(x, y, z float64) float64 { return w.lattice3.Value(x, y, z) }

// Builtin returns the pluggable builtin noise provider.
func (w *World) Builtin() noise.Func { return w.builtin }
