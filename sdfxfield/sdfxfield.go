// Package sdfxfield bridges github.com/deadsy/sdfx solids and the
// adaptive polygonizer's field interface, in both directions: sdfx
// solids become bounded fields, and bounded fields become SDF3s that
// sdfx's own renderers can mesh.
package sdfxfield

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	mc "github.com/melisa2505/Paralela-marching-cubes"
	"gonum.org/v1/gonum/spatial/r3"
)

// Compile-time interface checks.
var (
	_ mc.BoundedField3 = (*sdfxField)(nil)
	_ sdf.SDF3         = (*fieldSDF3)(nil)
)

// sdfxField adapts an sdf.SDF3 to mc.BoundedField3.
type sdfxField struct {
	s sdf.SDF3
}

// Field wraps an sdfx solid as a bounded field ready for adaptive
// polygonization. Field panics on a nil solid.
func Field(s sdf.SDF3) mc.BoundedField3 {
	if s == nil {
		panic("nil SDF3")
	}
	return &sdfxField{s: s}
}

// Evaluate returns the sdfx distance at p.
func (f *sdfxField) Evaluate(p r3.Vec) float64 {
	return f.s.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z})
}

// Bounds returns the solid's bounding box.
func (f *sdfxField) Bounds() r3.Box {
	bb := f.s.BoundingBox()
	return r3.Box{
		Min: r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
		Max: r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
	}
}

// fieldSDF3 adapts an mc.BoundedField3 to sdf.SDF3.
type fieldSDF3 struct {
	f mc.BoundedField3
}

// SDF3 wraps a bounded field so sdfx renderers can mesh it. SDF3 panics
// on a nil field.
func SDF3(f mc.BoundedField3) sdf.SDF3 {
	if f == nil {
		panic("nil field")
	}
	return &fieldSDF3{f: f}
}

// Evaluate returns the field value at p.
func (s *fieldSDF3) Evaluate(p v3.Vec) float64 {
	return s.f.Evaluate(r3.Vec{X: p.X, Y: p.Y, Z: p.Z})
}

// BoundingBox returns the field's bounds.
func (s *fieldSDF3) BoundingBox() sdf.Box3 {
	bb := s.f.Bounds()
	return sdf.Box3{
		Min: v3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
		Max: v3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
	}
}

// UniformTriangles meshes s with sdfx's fixed-grid marching cubes
// renderer over meshCells cells on the longest axis. It serves as a
// reference tessellation to compare the adaptive octree against.
func UniformTriangles(s sdf.SDF3, meshCells int) []r3.Triangle {
	r := render.NewMarchingCubesUniform(meshCells)
	ts := render.ToTriangles(s, r)
	out := make([]r3.Triangle, len(ts))
	for i, t := range ts {
		for j := 0; j < 3; j++ {
			out[i][j] = r3.Vec{X: t[j].X, Y: t[j].Y, Z: t[j].Z}
		}
	}
	return out
}
