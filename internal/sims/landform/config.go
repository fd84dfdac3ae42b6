package landform

import (
	"fmt"

	"terragen/internal/core"
	"terragen/pkg/noise"
	"terragen/pkg/terrain"
)

// Config holds the world and regeneration parameters of the preview.
type Config struct {
	World   terrain.WorldConfig
	Terrain terrain.Config
	View    View
}

// DefaultConfig returns the standard preview: a 128x128 grid over the
// default 256x256x32 world.
func DefaultConfig() Config {
	return Config{
		World:   terrain.DefaultWorldConfig(),
		Terrain: terrain.DefaultConfig(),
		View:    ViewSurface,
	}
}

// FromMap overlays string values onto the default configuration. Unknown
// keys are ignored; values that do not parse are errors.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	t := &c.Terrain
	w := &c.World
	for _, err := range []error{
		core.Int64Value(cfg, "seed", &w.Seed),
		core.IntValue(cfg, "lattice", &w.LatticeLength),
		core.IntValue(cfg, "lattice", &w.LatticeWidth),
		core.IntValue(cfg, "height", &w.MaxHeight),
		core.IntValue(cfg, "length", &t.Length),
		core.IntValue(cfg, "width", &t.Width),
		core.IntValue(cfg, "scale", &t.Noise.Scale),
		core.IntValue(cfg, "octaves", &t.Noise.Octaves),
		core.FloatValue(cfg, "mix", &t.Landform.Mix),
		core.IntValue(cfg, "sea", &t.Biome.SeaLevel),
		core.FloatValue(cfg, "cave", &t.Biome.CaveThreshold),
		core.FloatValue(cfg, "tmin", &t.Biome.MinTemperature),
		core.FloatValue(cfg, "tmax", &t.Biome.MaxTemperature),
		core.FloatValue(cfg, "humid", &t.Biome.HumidityThreshold),
	} {
		if err != nil {
			return c, err
		}
	}
	if v, ok := cfg["builtin"]; ok {
		w.BuiltinKind = noise.Builtin(v)
	}
	if v, ok := cfg["noise"]; ok {
		nt, err := terrain.ParseNoiseType(v)
		if err != nil {
			return c, err
		}
		t.Noise.Type = nt
	}
	if v, ok := cfg["shape"]; ok {
		s, err := terrain.ParseShape(v)
		if err != nil {
			return c, err
		}
		t.Landform.Shape = s
	}
	if v, ok := cfg["expand"]; ok {
		m, err := terrain.ParseExpandMode(v)
		if err != nil {
			return c, err
		}
		t.Humidity = m
	}
	if v, ok := cfg["view"]; ok {
		view, err := ParseView(v)
		if err != nil {
			return c, err
		}
		c.View = view
	}
	return c, nil
}

// View selects which field the preview paints.
type View uint8

const (
	ViewSurface View = iota
	ViewHeight
	ViewTemperature
	ViewHumidity
)

var viewNames = [...]string{
	ViewSurface:     "surface",
	ViewHeight:      "height",
	ViewTemperature: "temperature",
	ViewHumidity:    "humidity",
}

func (v View) String() string {
	if int(v) < len(viewNames) {
		return viewNames[v]
	}
	return fmt.Sprintf("View(%d)", v)
}

// ParseView maps a view name onto its View.
func ParseView(s string) (View, error) {
	for i, name := range viewNames {
		if name == s {
			return View(i), nil
		}
	}
	return 0, fmt.Errorf("%w: view=%q", core.ErrBadParameter, s)
}
