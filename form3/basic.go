// Package form3 provides solid primitives and implicit surfaces ready
// for adaptive polygonization. Constructors panic on invalid arguments.
package form3

import (
	"math"

	"github.com/melisa2505/Paralela-marching-cubes/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// box is a 3d box.
type box struct {
	size  r3.Vec
	round float64
	bb    r3.Box
}

// Box returns a field for a 3d box (rounded corners with round > 0).
func Box(size r3.Vec, round float64) *box {
	if d3.LTEZero(size) {
		panic("size <= 0")
	}
	if round < 0 {
		panic("round < 0")
	}
	size = r3.Scale(0.5, size)
	s := box{
		size:  r3.Sub(size, d3.Elem(round)),
		round: round,
		bb:    r3.Box{Min: r3.Scale(-1, size), Max: size},
	}
	return &s
}

// Evaluate returns the minimum distance to a 3d box.
func (s *box) Evaluate(p r3.Vec) float64 {
	return sdfBox3d(p, s.size) - s.round
}

// Bounds returns the bounding box for a 3d box.
func (s *box) Bounds() r3.Box {
	return s.bb
}

// Sphere (exact distance field)

// sphere is a sphere.
type sphere struct {
	radius float64
	bb     r3.Box
}

// Sphere returns a field for a sphere.
func Sphere(radius float64) *sphere {
	if radius <= 0 {
		panic("radius <= 0")
	}
	d := d3.Elem(radius)
	s := sphere{
		radius: radius,
		bb:     r3.Box{Min: r3.Scale(-1, d), Max: d},
	}
	return &s
}

// Evaluate returns the minimum distance to a sphere.
func (s *sphere) Evaluate(p r3.Vec) float64 {
	return r3.Norm(p) - s.radius
}

// Bounds returns the bounding box for a sphere.
func (s *sphere) Bounds() r3.Box {
	return s.bb
}

// Cylinder (exact distance field)

// cylinder is a cylinder.
type cylinder struct {
	height float64
	radius float64
	round  float64
	bb     r3.Box
}

// Cylinder returns a field for a cylinder (rounded edges with round > 0).
func Cylinder(height, radius, round float64) *cylinder {
	if radius <= 0 {
		panic("radius <= 0")
	}
	if round < 0 {
		panic("round < 0")
	}
	if round > radius {
		panic("round > radius")
	}
	if height < 2.0*round {
		panic("height < 2 * round")
	}
	s := cylinder{}
	s.height = (height / 2) - round
	s.radius = radius - round
	s.round = round
	d := r3.Vec{X: radius, Y: radius, Z: height / 2}
	s.bb = r3.Box{Min: r3.Scale(-1, d), Max: d}
	return &s
}

// Capsule returns a field for a capsule.
func Capsule(height, radius float64) *cylinder {
	return Cylinder(height, radius, radius)
}

// Evaluate returns the minimum distance to a cylinder.
func (s *cylinder) Evaluate(p r3.Vec) float64 {
	d := sdfBox2d(r2.Vec{X: math.Hypot(p.X, p.Y), Y: p.Z}, r2.Vec{X: s.radius, Y: s.height})
	return d - s.round
}

// Bounds returns the bounding box for a cylinder.
func (s *cylinder) Bounds() r3.Box {
	return s.bb
}

func sdfBox3d(p, s r3.Vec) float64 {
	d := r3.Sub(d3.AbsElem(p), s)
	if d.X > 0 && d.Y > 0 && d.Z > 0 {
		return r3.Norm(d)
	}
	if d.X > 0 && d.Y > 0 {
		return math.Hypot(d.X, d.Y)
	}
	if d.X > 0 && d.Z > 0 {
		return math.Hypot(d.X, d.Z)
	}
	if d.Y > 0 && d.Z > 0 {
		return math.Hypot(d.Y, d.Z)
	}
	if d.X > 0 {
		return d.X
	}
	if d.Y > 0 {
		return d.Y
	}
	if d.Z > 0 {
		return d.Z
	}
	return d3.Max(d)
}

func sdfBox2d(p, s r2.Vec) float64 {
	p = r2.Vec{X: math.Abs(p.X), Y: math.Abs(p.Y)}
	d := r2.Sub(p, s)
	k := s.Y - s.X
	if d.X > 0 && d.Y > 0 {
		return r2.Norm(d)
	}
	if p.Y-p.X > k {
		return d.Y
	}
	return d.X
}
