// Package biome maps a voxel's altitude, climate and cave density onto a
// material.
package biome

// Material enumerates the voxel categories a column can hold.
type Material uint8

const (
	Void Material = iota
	Rock
	Water
	Cold
	ColdDry
	Temperate
	TemperateDry
	Hot
	HotDry
)

// Materials lists every Material in declaration order.
var Materials = []Material{Void, Rock, Water, Cold, ColdDry, Temperate, TemperateDry, Hot, HotDry}

var materialNames = [...]string{
	Void:         "void",
	Rock:         "rock",
	Water:        "water",
	Cold:         "cold",
	ColdDry:      "cold-dry",
	Temperate:    "temperate",
	TemperateDry: "temperate-dry",
	Hot:          "hot",
	HotDry:       "hot-dry",
}

func (m Material) String() string {
	if int(m) < len(materialNames) {
		return materialNames[m]
	}
	return "unknown"
}

// Solid reports whether the material produces a voxel.
func (m Material) Solid() bool { return m != Void }

// AltitudeDecay is how much temperature and humidity drop per voxel above
// sea level. It is a rough heuristic, not a lapse-rate model.
const AltitudeDecay = 0.01

// Params holds the classification thresholds. SeaLevel is a voxel height;
// every other field lies in [0, 1].
type Params struct {
	CaveThreshold     float64
	SeaLevel          int
	MinTemperature    float64
	MaxTemperature    float64
	HumidityThreshold float64
}

// DefaultParams returns the standard thresholds.
func DefaultParams() Params {
	return Params{
		CaveThreshold:     0.5,
		SeaLevel:          8,
		MinTemperature:    0.333,
		MaxTemperature:    0.666,
		HumidityThreshold: 0.5,
	}
}

// Sample is everything Classify needs to know about one voxel.
type Sample struct {
	Z           int
	Height      int
	Temperature float64
	Humidity    float64
	// Density is the 3D cave noise at the voxel; cells at or below the
	// cave threshold are carved out.
	Density float64
}

// Classify returns the material at s.
//
// Below sea level, voxels under the column height are rock unless carved by
// a cave and the rest is water. Between sea level and the column height,
// uncarved voxels take a climate material chosen from the temperature and
// humidity after altitude decay. Everything else is void.
func Classify(s Sample, p Params) Material {
	if s.Z < p.SeaLevel {
		if s.Z >= s.Height {
			return Water
		}
		if s.Density > p.CaveThreshold {
			return Rock
		}
		return Void
	}
	if s.Z >= s.Height || s.Density <= p.CaveThreshold {
		return Void
	}

	decay := AltitudeDecay * float64(s.Z-p.SeaLevel)
	temperature := s.Temperature - decay
	wet := s.Humidity-decay > p.HumidityThreshold

	switch {
	case temperature < p.MinTemperature:
		if wet {
			return Cold
		}
		return ColdDry
	case temperature < p.MaxTemperature:
		if wet {
			return Temperate
		}
		return TemperateDry
	default:
		if wet {
			return Hot
		}
		return HotDry
	}
}
