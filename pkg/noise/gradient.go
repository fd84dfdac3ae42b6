package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Func samples a 2D noise source. Values are expected in [0, 1].
type Func func(x, y float64) float64

// Value evaluates gradient noise at (x, y) and returns a value in [0, 1].
//
// Corner contributions are blended with the raw fractional offsets as
// weights; no fade curve is applied, so the result is only C0 continuous
// across cell borders.
func (l *Lattice2D) Value(x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	dx := x - float64(x0)
	dy := y - float64(y0)

	v00 := l.Gradient(x0, y0).Dot(mgl64.Vec2{dx, dy})
	v10 := l.Gradient(x0+1, y0).Dot(mgl64.Vec2{dx - 1, dy})
	v01 := l.Gradient(x0, y0+1).Dot(mgl64.Vec2{dx, dy - 1})
	v11 := l.Gradient(x0+1, y0+1).Dot(mgl64.Vec2{dx - 1, dy - 1})

	n := lerp(lerp(v00, v10, dx), lerp(v01, v11, dx), dy)
	return (n + 1) * 0.5
}

// Value evaluates trilinear gradient noise at (x, y, z) in [0, 1].
func (l *Lattice3D) Value(x, y, z float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	z0 := int(math.Floor(z))
	dx := x - float64(x0)
	dy := y - float64(y0)
	dz := z - float64(z0)

	corner := func(ix, iy, iz int) float64 {
		off := mgl64.Vec3{dx - float64(ix), dy - float64(iy), dz - float64(iz)}
		return l.Gradient(x0+ix, y0+iy, z0+iz).Dot(off)
	}

	near := lerp(lerp(corner(0, 0, 0), corner(1, 0, 0), dx), lerp(corner(0, 1, 0), corner(1, 1, 0), dx), dy)
	far := lerp(lerp(corner(0, 0, 1), corner(1, 0, 1), dx), lerp(corner(0, 1, 1), corner(1, 1, 1), dx), dy)
	return (lerp(near, far, dz) + 1) * 0.5
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
