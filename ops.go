package mc

import (
	"math"
	"strconv"

	"github.com/melisa2505/Paralela-marching-cubes/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Field combinators. Inside-ness composes through the min/max of field
// values, so combined fields keep the negative-inside sign convention.
// The results are valid polygonization inputs but not exact distances.

// bounded attaches explicit bounds to a field.
type bounded struct {
	f  Field3
	bb r3.Box
}

// Bounded returns f with the given bounding box attached.
// Bounded will panic if f is nil.
func Bounded(f Field3, bounds r3.Box) BoundedField3 {
	if f == nil {
		panic("nil field argument to Bounded")
	}
	return &bounded{f: f, bb: bounds}
}

// Evaluate returns the wrapped field value.
func (s *bounded) Evaluate(p r3.Vec) float64 { return s.f.Evaluate(p) }

// Bounds returns the attached bounding box.
func (s *bounded) Bounds() r3.Box { return s.bb }

// union3 is a union of fields.
type union3 struct {
	fields []BoundedField3
	bb     r3.Box
}

// Union3D returns the union of multiple fields: a point is inside the
// union when it is inside any argument. Union3D will panic if the
// argument list is shorter than 2 or if an argument field is nil.
func Union3D(fields ...BoundedField3) BoundedField3 {
	if len(fields) < 2 {
		panic("union requires at least 2 fields")
	}
	s := union3{fields: fields}
	for i, f := range fields {
		if f == nil {
			panic("nil field argument (" + strconv.Itoa(i) + ") to Union3D")
		}
	}
	// work out the bounding box
	bb := d3.Box(fields[0].Bounds())
	for _, f := range fields[1:] {
		bb = bb.Extend(d3.Box(f.Bounds()))
	}
	s.bb = r3.Box(bb)
	return &s
}

// Evaluate returns the minimum of the argument field values at p.
func (s *union3) Evaluate(p r3.Vec) float64 {
	d := s.fields[0].Evaluate(p)
	for _, f := range s.fields[1:] {
		d = math.Min(d, f.Evaluate(p))
	}
	return d
}

// Bounds returns the bounding box of the union.
func (s *union3) Bounds() r3.Box { return s.bb }

// intersect3 is the intersection of two fields.
type intersect3 struct {
	s0, s1 BoundedField3
	bb     r3.Box
}

// Intersect3D returns the intersection of two fields: a point is inside
// the result when it is inside both. Intersect3D will panic if an
// argument is nil.
func Intersect3D(s0, s1 BoundedField3) BoundedField3 {
	if s0 == nil || s1 == nil {
		panic("nil argument to Intersect3D")
	}
	return &intersect3{s0: s0, s1: s1, bb: s0.Bounds()}
}

// Evaluate returns the maximum of the two field values at p.
func (s *intersect3) Evaluate(p r3.Vec) float64 {
	return math.Max(s.s0.Evaluate(p), s.s1.Evaluate(p))
}

// Bounds returns a bounding box of the intersection.
func (s *intersect3) Bounds() r3.Box { return s.bb }

// diff3 is the difference of two fields, s0 - s1.
type diff3 struct {
	s0, s1 BoundedField3
	bb     r3.Box
}

// Difference3D returns the difference of two fields, s0 - s1: a point is
// inside the result when it is inside s0 and outside s1. Difference3D
// will panic if an argument is nil.
func Difference3D(s0, s1 BoundedField3) BoundedField3 {
	if s0 == nil || s1 == nil {
		panic("nil argument to Difference3D")
	}
	return &diff3{s0: s0, s1: s1, bb: s0.Bounds()}
}

// Evaluate returns the field value of the difference at p.
func (s *diff3) Evaluate(p r3.Vec) float64 {
	return math.Max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

// Bounds returns the bounding box of the difference.
func (s *diff3) Bounds() r3.Box { return s.bb }

// translate3 is a translated field.
type translate3 struct {
	f  BoundedField3
	v  r3.Vec
	bb r3.Box
}

// Translate3D returns f moved by v. Translate3D will panic if f is nil.
func Translate3D(f BoundedField3, v r3.Vec) BoundedField3 {
	if f == nil {
		panic("nil field argument to Translate3D")
	}
	bb := d3.Box(f.Bounds()).Translate(v)
	return &translate3{f: f, v: v, bb: r3.Box(bb)}
}

// Evaluate returns the translated field value at p.
func (s *translate3) Evaluate(p r3.Vec) float64 {
	return s.f.Evaluate(r3.Sub(p, s.v))
}

// Bounds returns the translated bounding box.
func (s *translate3) Bounds() r3.Box { return s.bb }
