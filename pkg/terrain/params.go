package terrain

import (
	"fmt"

	"terragen/pkg/biome"
)

// NoiseType selects the height-field source.
type NoiseType uint8

const (
	// Random reads the precomputed uniform field directly.
	Random NoiseType = iota
	// Random4 averages a 2x2 toroidal block of the uniform field.
	Random4
	// Gradient samples the world's 2D lattice once.
	Gradient
	// BuiltinGradient samples the pluggable builtin provider once.
	BuiltinGradient
	// GradientFractal sums octaves of the 2D lattice.
	GradientFractal
	// BuiltinGradientFractal sums octaves of the builtin provider.
	BuiltinGradientFractal
)

var noiseTypeNames = [...]string{
	Random:                 "random",
	Random4:                "random4",
	Gradient:               "gradient",
	BuiltinGradient:        "builtin",
	GradientFractal:        "gradient-fractal",
	BuiltinGradientFractal: "builtin-fractal",
}

func (t NoiseType) String() string {
	if int(t) < len(noiseTypeNames) {
		return noiseTypeNames[t]
	}
	return fmt.Sprintf("NoiseType(%d)", t)
}

// ParseNoiseType maps a name produced by String back to its NoiseType.
func ParseNoiseType(s string) (NoiseType, error) {
	for i, name := range noiseTypeNames {
		if name == s {
			return NoiseType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedNoiseType, s)
}

// NoiseTypeNames lists every NoiseType name in declaration order.
func NoiseTypeNames() []string { return append([]string(nil), noiseTypeNames[:]...) }

// Shape selects the landform redistribution profile.
type Shape uint8

const (
	ShapeNone Shape = iota
	IslandEuclidean
	IslandSquareBump
	IslandEuclidean2
	IslandManhattan
)

var shapeNames = [...]string{
	ShapeNone:        "none",
	IslandEuclidean:  "euclidean",
	IslandSquareBump: "square-bump",
	IslandEuclidean2: "euclidean2",
	IslandManhattan:  "manhattan",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", s)
}

// ParseShape maps a name produced by String back to its Shape.
func ParseShape(s string) (Shape, error) {
	for i, name := range shapeNames {
		if name == s {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedLandformShape, s)
}

// ShapeNames lists every Shape name in declaration order.
func ShapeNames() []string { return append([]string(nil), shapeNames[:]...) }

// NoiseParams drives the height-field source.
type NoiseParams struct {
	Type    NoiseType
	Scale   int
	Octaves int
}

// LandformParams drives redistribution. Mix blends the raw noise (0) with
// the pure shape profile (1).
type LandformParams struct {
	Shape Shape
	Mix   float64
}

// ExpandMode selects the humidity spreading operator.
type ExpandMode uint8

const (
	// ExpandInPlace accumulates into the buffer being read, in raster
	// order. It reproduces the reference humidity fields exactly.
	ExpandInPlace ExpandMode = iota
	// ExpandBuffered reads from a clamped snapshot.
	ExpandBuffered
)

var expandModeNames = [...]string{
	ExpandInPlace:  "in-place",
	ExpandBuffered: "buffered",
}

func (m ExpandMode) String() string {
	if int(m) < len(expandModeNames) {
		return expandModeNames[m]
	}
	return fmt.Sprintf("ExpandMode(%d)", m)
}

// ExpandModeNames lists every ExpandMode name in declaration order.
func ExpandModeNames() []string { return append([]string(nil), expandModeNames[:]...) }

// ParseExpandMode maps a name produced by String back to its ExpandMode.
func ParseExpandMode(s string) (ExpandMode, error) {
	for i, name := range expandModeNames {
		if name == s {
			return ExpandMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: expand mode %q", ErrInvalidConfiguration, s)
}

// Config is the full set of regeneration parameters.
type Config struct {
	Length   int
	Width    int
	Noise    NoiseParams
	Landform LandformParams
	Biome    biome.Params
	Humidity ExpandMode
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Length:   128,
		Width:    128,
		Noise:    NoiseParams{Type: GradientFractal, Scale: 8, Octaves: 4},
		Landform: LandformParams{Shape: ShapeNone, Mix: 0.5},
		Biome:    biome.DefaultParams(),
		Humidity: ExpandInPlace,
	}
}

// Validate rejects configurations a regeneration cannot honour.
func (c Config) Validate() error {
	if c.Length <= 0 || c.Width <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfiguration, c.Length, c.Width)
	}
	if c.Noise.Scale <= 0 {
		return fmt.Errorf("%w: noise scale %d must be positive", ErrInvalidConfiguration, c.Noise.Scale)
	}
	if c.Noise.Octaves <= 0 {
		return fmt.Errorf("%w: octaves %d must be positive", ErrInvalidConfiguration, c.Noise.Octaves)
	}
	if int(c.Noise.Type) >= len(noiseTypeNames) {
		return fmt.Errorf("%w: %v", ErrUnsupportedNoiseType, c.Noise.Type)
	}
	if int(c.Landform.Shape) >= len(shapeNames) {
		return fmt.Errorf("%w: %v", ErrUnsupportedLandformShape, c.Landform.Shape)
	}
	if !unit(c.Landform.Mix) {
		return fmt.Errorf("%w: landform mix %v outside [0,1]", ErrInvalidConfiguration, c.Landform.Mix)
	}
	b := c.Biome
	if b.SeaLevel < 0 {
		return fmt.Errorf("%w: sea level %d is negative", ErrInvalidConfiguration, b.SeaLevel)
	}
	for _, th := range []struct {
		name string
		v    float64
	}{
		{"cave threshold", b.CaveThreshold},
		{"min temperature", b.MinTemperature},
		{"max temperature", b.MaxTemperature},
		{"humidity threshold", b.HumidityThreshold},
	} {
		if !unit(th.v) {
			return fmt.Errorf("%w: %s %v outside [0,1]", ErrInvalidConfiguration, th.name, th.v)
		}
	}
	if b.MinTemperature >= b.MaxTemperature {
		return fmt.Errorf("%w: min temperature %v must be below max %v", ErrInvalidConfiguration, b.MinTemperature, b.MaxTemperature)
	}
	if c.Humidity != ExpandInPlace && c.Humidity != ExpandBuffered {
		return fmt.Errorf("%w: humidity %v", ErrInvalidConfiguration, c.Humidity)
	}
	return nil
}

func unit(v float64) bool { return v >= 0 && v <= 1 }
