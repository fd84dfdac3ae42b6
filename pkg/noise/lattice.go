package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"terragen/pkg/core"
)

// Lattice2D is a toroidal grid of unit gradient vectors.
type Lattice2D struct {
	LX, LY int
	g      []mgl64.Vec2
}

// Lattice3D is the volumetric counterpart of Lattice2D.
type Lattice3D struct {
	LX, LY, LZ int
	g          []mgl64.Vec3
}

// Generate2D draws one angle per cell, x outer and y inner, and stores the
// unit vector (cos θ, sin θ).
func Generate2D(src core.Source, lx, ly int) *Lattice2D {
	lx, ly = max(lx, 1), max(ly, 1)
	l := &Lattice2D{LX: lx, LY: ly, g: make([]mgl64.Vec2, lx*ly)}
	for x := 0; x < lx; x++ {
		for y := 0; y < ly; y++ {
			theta := src.NextDouble() * 2 * math.Pi
			l.g[l.index(x, y)] = mgl64.Vec2{math.Cos(theta), math.Sin(theta)}
		}
	}
	return l
}

// Generate3D draws two independent angles per cell (alpha then beta) and
// stores (cos β cos α, cos β sin α, sin β). Sampling two uniform angles
// over-weights the poles; the construction is kept as is so lattices stay
// reproducible.
func Generate3D(src core.Source, lx, ly, lz int) *Lattice3D {
	lx, ly, lz = max(lx, 1), max(ly, 1), max(lz, 1)
	l := &Lattice3D{LX: lx, LY: ly, LZ: lz, g: make([]mgl64.Vec3, lx*ly*lz)}
	for x := 0; x < lx; x++ {
		for y := 0; y < ly; y++ {
			for z := 0; z < lz; z++ {
				alpha := src.NextDouble() * 2 * math.Pi
				beta := src.NextDouble() * 2 * math.Pi
				cb := math.Cos(beta)
				l.g[l.index(x, y, z)] = mgl64.Vec3{cb * math.Cos(alpha), cb * math.Sin(alpha), math.Sin(beta)}
			}
		}
	}
	return l
}

// Uniform2D builds a lattice whose every gradient is g. Mostly useful for
// probing the evaluator.
func Uniform2D(lx, ly int, g mgl64.Vec2) *Lattice2D {
	lx, ly = max(lx, 1), max(ly, 1)
	l := &Lattice2D{LX: lx, LY: ly, g: make([]mgl64.Vec2, lx*ly)}
	for i := range l.g {
		l.g[i] = g
	}
	return l
}

// Gradient returns the vector stored at (x, y) after wrapping.
func (l *Lattice2D) Gradient(x, y int) mgl64.Vec2 {
	return l.g[l.index(core.Wrap(x, l.LX), core.Wrap(y, l.LY))]
}

// Gradient returns the vector stored at (x, y, z) after wrapping.
func (l *Lattice3D) Gradient(x, y, z int) mgl64.Vec3 {
	return l.g[l.index(core.Wrap(x, l.LX), core.Wrap(y, l.LY), core.Wrap(z, l.LZ))]
}

func (l *Lattice2D) index(x, y int) int { return y*l.LX + x }

func (l *Lattice3D) index(x, y, z int) int { return (z*l.LY+y)*l.LX + x }
