package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Redistribute pulls value toward the landform profile at cell (x, y) of a
// length x width grid. ShapeNone returns value unchanged; every other shape
// blends value with 1-d by p.Mix, where d is the shape's normalized
// distance from the grid center, and clamps to [0, 1].
func Redistribute(value float64, x, y, length, width int, p LandformParams) (float64, error) {
	if p.Shape == ShapeNone {
		return value, nil
	}
	nx := 2*float64(x)/float64(length) - 1
	ny := 2*float64(y)/float64(width) - 1

	d, err := shapeDistance(p.Shape, nx, ny)
	if err != nil {
		return 0, err
	}
	value = value + (1-d-value)*p.Mix
	return mgl64.Clamp(value, 0, 1), nil
}

func shapeDistance(s Shape, nx, ny float64) (float64, error) {
	switch s {
	case IslandEuclidean:
		return math.Hypot(nx, ny) / math.Sqrt2, nil
	case IslandSquareBump:
		return 1 - (1-nx*nx)*(1-ny*ny), nil
	case IslandEuclidean2:
		return math.Min(1, (nx*nx+ny*ny)/math.Sqrt2), nil
	case IslandManhattan:
		return (math.Abs(nx) + math.Abs(ny)) / 2, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedLandformShape, s)
	}
}
