package landform

import (
	"terragen/internal/core"
	"terragen/pkg/terrain"
)

// Parameters reports the staged configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	c := s.pending
	w := s.terrain.World().Config()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{
			core.IntParam("seed", "Seed", int(s.terrain.World().Seed()), "world seed"),
			core.IntParam("lattice", "Lattice", w.LatticeLength, "gradient lattice side"),
			core.IntParam("height", "Max height", w.MaxHeight, "voxel column ceiling"),
			core.EnumParam("builtin", "Builtin", string(w.BuiltinKind), []string{"perlin", "simplex"}, "builtin noise provider"),
		}},
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("length", "Length", c.Length, "cells along x"),
			core.IntParam("width", "Width", c.Width, "cells along y"),
		}},
		{Name: "Noise", Params: []core.Parameter{
			core.EnumParam("noise", "Noise", c.Noise.Type.String(), terrain.NoiseTypeNames(), "height source"),
			core.IntParam("scale", "Scale", c.Noise.Scale, "lattice cells spanned by the grid"),
			core.IntParam("octaves", "Octaves", c.Noise.Octaves, "fractal octaves"),
		}},
		{Name: "Landform", Params: []core.Parameter{
			core.EnumParam("shape", "Shape", c.Landform.Shape.String(), terrain.ShapeNames(), "island profile"),
			core.FloatParam("mix", "Mix", c.Landform.Mix, "noise to profile blend"),
		}},
		{Name: "Biome", Params: []core.Parameter{
			core.IntParam("sea", "Sea level", c.Biome.SeaLevel, "water fills columns below this height"),
			core.FloatParam("cave", "Cave", c.Biome.CaveThreshold, "density below which rock is carved"),
			core.FloatParam("tmin", "Cold below", c.Biome.MinTemperature, "cold band threshold"),
			core.FloatParam("tmax", "Hot from", c.Biome.MaxTemperature, "hot band threshold"),
			core.FloatParam("humid", "Wet above", c.Biome.HumidityThreshold, "humidity threshold"),
			core.EnumParam("expand", "Expand", c.Humidity.String(), terrain.ExpandModeNames(), "humidity spreading"),
		}},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Sim) ParameterControls() []core.ParameterControl {
	maxHeight := float64(s.terrain.World().MaxHeight())
	return []core.ParameterControl{
		{Key: "length", Label: "Length", Type: core.ParamTypeInt, Step: 16, Min: 16, Max: 512, HasMin: true, HasMax: true},
		{Key: "width", Label: "Width", Type: core.ParamTypeInt, Step: 16, Min: 16, Max: 512, HasMin: true, HasMax: true},
		{Key: "noise", Label: "Noise", Type: core.ParamTypeEnum},
		{Key: "scale", Label: "Scale", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
		{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
		{Key: "shape", Label: "Shape", Type: core.ParamTypeEnum},
		{Key: "mix", Label: "Mix", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "sea", Label: "Sea level", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxHeight, HasMin: true, HasMax: true},
		{Key: "cave", Label: "Cave", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "tmin", Label: "Cold below", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "tmax", Label: "Hot from", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "humid", Label: "Wet above", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "expand", Label: "Expand", Type: core.ParamTypeEnum},
	}
}

// SetIntParameter stages an integer change. Invalid results are refused.
func (s *Sim) SetIntParameter(key string, value int) bool {
	next := s.pending
	switch key {
	case "length":
		next.Length = value
	case "width":
		next.Width = value
	case "scale":
		next.Noise.Scale = value
	case "octaves":
		next.Noise.Octaves = value
	case "sea":
		next.Biome.SeaLevel = value
	default:
		return false
	}
	return s.stage(next)
}

// SetFloatParameter stages a floating point change. Invalid results are
// refused.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	next := s.pending
	switch key {
	case "mix":
		next.Landform.Mix = value
	case "cave":
		next.Biome.CaveThreshold = value
	case "tmin":
		next.Biome.MinTemperature = value
	case "tmax":
		next.Biome.MaxTemperature = value
	case "humid":
		next.Biome.HumidityThreshold = value
	default:
		return false
	}
	return s.stage(next)
}

// SetEnumParameter stages a named-choice change.
func (s *Sim) SetEnumParameter(key, value string) bool {
	next := s.pending
	var err error
	switch key {
	case "noise":
		next.Noise.Type, err = terrain.ParseNoiseType(value)
	case "shape":
		next.Landform.Shape, err = terrain.ParseShape(value)
	case "expand":
		next.Humidity, err = terrain.ParseExpandMode(value)
	default:
		return false
	}
	if err != nil {
		return false
	}
	return s.stage(next)
}

func (s *Sim) stage(next terrain.Config) bool {
	if next.Validate() != nil {
		return false
	}
	s.pending = next
	return true
}
