// Package mc polygonizes implicit surfaces: it converts a scalar field
// over 3D space into a triangle-soup approximation of the field's zero
// level set. The render subpackage implements the adaptive algorithm,
// marching cubes driven by recursive octree subdivision with stochastic
// pruning of empty regions and parallel extraction of independent
// octants. This package defines the field abstraction consumed by the
// polygonizer along with basic field combinators.
package mc

import "gonum.org/v1/gonum/spatial/r3"

// Field3 is the interface to an implicit scalar field over 3D space.
type Field3 interface {
	// Evaluate returns the field value at point p. The value is negative
	// if p is inside the surface and non-negative if outside; the surface
	// itself is the zero level set. Values need not be true distances.
	//
	// Evaluate must be pure and reentrant: the polygonizer calls it
	// concurrently from multiple worker goroutines with no synchronization.
	// Non-finite results are treated as "outside" by the polygonizer.
	Evaluate(p r3.Vec) float64
}

// BoundedField3 is a Field3 that knows an axis-aligned box completely
// containing its surface.
type BoundedField3 interface {
	Field3
	// Bounds returns the bounding box that completely contains
	// the zero level set of the field.
	Bounds() r3.Box
}

// Func3 adapts a plain coordinate function to the Field3 interface. The
// function must satisfy the purity and reentrancy contract of Field3.
type Func3 func(x, y, z float64) float64

// Evaluate implements Field3.
func (f Func3) Evaluate(p r3.Vec) float64 { return f(p.X, p.Y, p.Z) }
