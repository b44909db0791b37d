package form3

import (
	"math"

	"github.com/melisa2505/Paralela-marching-cubes/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Implicit surfaces. These fields are not distance fields: their values
// only promise the sign convention (negative inside), which is all the
// adaptive polygonizer needs.

const (
	bulbPower      = 8
	bulbIterations = 10
	bulbBailout    = 2
)

// mandelbulb is the power-8 mandelbulb fractal.
type mandelbulb struct {
	bb r3.Box
}

// Mandelbulb returns the power-8 mandelbulb as a field. The value is an
// escape-radius excess rather than a distance. The bulb fits inside a
// ball of radius 2^(1/7), so the bounds leave a small margin around it.
func Mandelbulb() *mandelbulb {
	d := d3.Elem(1.25)
	return &mandelbulb{bb: r3.Box{Min: r3.Scale(-1, d), Max: d}}
}

// Evaluate returns how far past the bailout radius the power-8 iteration
// escapes at p. Points that stay bounded evaluate negative.
func (s *mandelbulb) Evaluate(p r3.Vec) float64 {
	z := p
	for i := 0; i < bulbIterations; i++ {
		r := r3.Norm(z)
		if r > bulbBailout {
			return r - bulbBailout
		}
		theta := bulbPower * math.Atan2(math.Hypot(z.X, z.Y), z.Z)
		phi := bulbPower * math.Atan2(z.Y, z.X)
		rp := math.Pow(r, bulbPower)
		sinTheta, cosTheta := math.Sincos(theta)
		sinPhi, cosPhi := math.Sincos(phi)
		z = r3.Add(r3.Vec{
			X: rp * sinTheta * cosPhi,
			Y: rp * sinTheta * sinPhi,
			Z: rp * cosTheta,
		}, p)
	}
	return r3.Norm(z) - bulbBailout
}

// Bounds returns the bounding box for the mandelbulb.
func (s *mandelbulb) Bounds() r3.Box {
	return s.bb
}

// barthSextic is the degree-six Barth surface.
type barthSextic struct {
	bb r3.Box
}

// BarthSextic returns the Barth sextic implicit surface. Its zero set
// runs off to infinity along the coordinate axes, so the bounds clip it
// to the customary [-6,6] viewing cube.
func BarthSextic() *barthSextic {
	d := d3.Elem(6)
	return &barthSextic{bb: r3.Box{Min: r3.Scale(-1, d), Max: d}}
}

// Evaluate returns the value of the Barth sextic polynomial at p.
func (s *barthSextic) Evaluate(p r3.Vec) float64 {
	const (
		phi  = math.Phi
		phi2 = phi * phi
	)
	x2, y2, z2 := p.X*p.X, p.Y*p.Y, p.Z*p.Z
	w := x2 + y2 + z2 - 1
	return 4*(phi2*x2-y2)*(phi2*y2-z2)*(phi2*z2-x2) - (1+2*phi)*w*w
}

// Bounds returns the clipped bounding box for the Barth sextic.
func (s *barthSextic) Bounds() r3.Box {
	return s.bb
}
