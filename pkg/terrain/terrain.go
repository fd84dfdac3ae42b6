// Package terrain synthesizes height and climate fields from a seeded World
// and classifies the resulting voxel columns.
package terrain

import (
	"terragen/pkg/core"
)

// Fields is one published generation result. Fields are never mutated
// after they are returned, so they may be shared with concurrent readers.
type Fields struct {
	Height      *core.HeightField
	Temperature *core.Field
	Humidity    *core.Field
}

type stage uint8

const (
	stageRandom stage = 1 << iota
	stageHeight
	stageTemperature
	stageHumidity

	stageAll = stageRandom | stageHeight | stageTemperature | stageHumidity
)

// Terrain regenerates Fields for a World as its Config changes. It is not
// safe for concurrent use.
type Terrain struct {
	world *World

	cfg    Config
	random *core.Field
	fields Fields
	built  bool
}

// New returns a Terrain that has not generated anything yet.
func New(world *World) *Terrain {
	return &Terrain{world: world}
}

// World returns the world the terrain draws from.
func (t *Terrain) World() *World { return t.world }

// Config returns the configuration of the last successful generation.
func (t *Terrain) Config() Config { return t.cfg }

// Fields returns the last published fields. They are zero before the first
// successful generation.
func (t *Terrain) Fields() Fields { return t.fields }

// Generate validates cfg and rebuilds every field.
func (t *Terrain) Generate(cfg Config) (Fields, error) {
	return t.apply(cfg, stageAll)
}

// Regenerate validates cfg and rebuilds only the fields it makes stale: a
// grid size change rebuilds everything, noise or landform changes rebuild
// height and humidity, sea level changes rebuild temperature and
// humidity, and expand mode changes rebuild humidity. On error the previously published fields stay in place.
func (t *Terrain) Regenerate(cfg Config) (Fields, error) {
	return t.apply(cfg, t.stale(cfg))
}

// Reseed restarts the world from seed and, when the terrain has been
// generated before, rebuilds every field with the current configuration.
func (t *Terrain) Reseed(seed int64) (Fields, error) {
	t.world.Reseed(seed)
	if !t.built {
		return t.fields, nil
	}
	return t.apply(t.cfg, stageAll)
}

func (t *Terrain) stale(cfg Config) stage {
	if !t.built || cfg.Length != t.cfg.Length || cfg.Width != t.cfg.Width {
		return stageAll
	}
	var s stage
	if cfg.Noise != t.cfg.Noise || cfg.Landform != t.cfg.Landform {
		s |= stageHeight | stageHumidity
	}
	if cfg.Biome.SeaLevel != t.cfg.Biome.SeaLevel {
		s |= stageTemperature | stageHumidity
	}
	if cfg.Humidity != t.cfg.Humidity {
		s |= stageHumidity
	}
	return s
}

func (t *Terrain) apply(cfg Config, s stage) (Fields, error) {
	if err := cfg.Validate(); err != nil {
		return t.fields, err
	}

	random := t.random
	next := t.fields
	if s&stageRandom != 0 {
		random = RandomField(t.world.Source(), cfg.Length, cfg.Width)
	}
	if s&stageHeight != 0 {
		h, err := BuildHeight(t.world, cfg.Length, cfg.Width, cfg.Noise, cfg.Landform, random)
		if err != nil {
			return t.fields, err
		}
		next.Height = h
	}
	if s&stageTemperature != 0 {
		next.Temperature = BuildTemperature(t.world, cfg.Length, cfg.Width)
	}
	if s&stageHumidity != 0 {
		next.Humidity = BuildHumidity(next.Height, cfg.Biome.SeaLevel, cfg.Humidity)
	}

	t.cfg = cfg
	t.random = random
	t.fields = next
	t.built = true
	return next, nil
}
