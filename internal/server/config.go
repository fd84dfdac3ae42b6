package server

import (
	"os"
	"strconv"
)

// Config holds the preview server settings.
type Config struct {
	Addr string
	// MaxSide bounds the grid length and width a request may ask for.
	MaxSide int
	// MaxLattice bounds the gradient lattice side of landform requests.
	MaxLattice int
	// MaxHeight bounds the voxel column ceiling of landform requests.
	MaxHeight int
	// MaxSteps bounds how many steps a preview may run.
	MaxSteps int
	// MaxDensity bounds the DLA target density, which drives walk length.
	MaxDensity float64
}

// DefaultConfig returns the standard limits on :8080.
func DefaultConfig() Config {
	return Config{Addr: ":8080", MaxSide: 512, MaxLattice: 256, MaxHeight: 64, MaxSteps: 256, MaxDensity: 0.8}
}

// Load overlays the environment onto DefaultConfig: TERRAGEN_ADDR,
// TERRAGEN_MAX_SIDE and TERRAGEN_MAX_STEPS.
func Load() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("TERRAGEN_ADDR"); v != "" {
		cfg.Addr = v
	}
	if n, err := strconv.Atoi(os.Getenv("TERRAGEN_MAX_SIDE")); err == nil && n > 0 {
		cfg.MaxSide = n
	}
	if n, err := strconv.Atoi(os.Getenv("TERRAGEN_MAX_STEPS")); err == nil && n > 0 {
		cfg.MaxSteps = n
	}
	return cfg
}

func (c Config) limits() map[string]int {
	return map[string]int{
		"length":  c.MaxSide,
		"width":   c.MaxSide,
		"lattice": c.MaxLattice,
		"height":  c.MaxHeight,
		"layers":  c.MaxSide / 4,
		"index":   16,
	}
}
