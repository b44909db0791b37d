package d3

import "gonum.org/v1/gonum/spatial/r3"

// Box is a 3d axis-aligned bounding box.
type Box r3.Box

// NewBox creates a 3d box with a given center and size.
func NewBox(center, size r3.Vec) Box {
	half := r3.Scale(0.5, size)
	return Box{Min: r3.Sub(center, half), Max: r3.Add(center, half)}
}

// Equals test the equality of 3d boxes.
func (a Box) Equals(b Box, tol float64) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}

// Extend returns a box enclosing two 3d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Include enlarges a 3d box to include a point.
func (a Box) Include(v r3.Vec) Box {
	return Box{
		Min: MinElem(a.Min, v),
		Max: MaxElem(a.Max, v),
	}
}

// Translate translates a 3d box.
func (a Box) Translate(v r3.Vec) Box {
	return Box{r3.Add(a.Min, v), r3.Add(a.Max, v)}
}

// Size returns the size of a 3d box.
func (a Box) Size() r3.Vec {
	return r3.Sub(a.Max, a.Min)
}

// Center returns the center of a 3d box.
func (a Box) Center() r3.Vec {
	return r3.Add(a.Min, r3.Scale(0.5, a.Size()))
}

// ScaleAboutCenter returns a new 3d box scaled about the center of a box.
func (a Box) ScaleAboutCenter(k float64) Box {
	return NewBox(a.Center(), r3.Scale(k, a.Size()))
}

// Contains checks if the 3d box contains the given vector (considering bounds as inside).
func (a Box) Contains(v r3.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y && a.Min.Z <= v.Z &&
		v.X <= a.Max.X && v.Y <= a.Max.Y && v.Z <= a.Max.Z
}

// Corners returns the box corners in marching-cubes winding order: the
// z=Min.Z face counterclockwise starting at Min, then the z=Max.Z face
// in the same x,y order. Corner i and corner i+4 differ only in z.
func (a Box) Corners() [8]r3.Vec {
	return [8]r3.Vec{
		{X: a.Min.X, Y: a.Min.Y, Z: a.Min.Z},
		{X: a.Max.X, Y: a.Min.Y, Z: a.Min.Z},
		{X: a.Max.X, Y: a.Max.Y, Z: a.Min.Z},
		{X: a.Min.X, Y: a.Max.Y, Z: a.Min.Z},
		{X: a.Min.X, Y: a.Min.Y, Z: a.Max.Z},
		{X: a.Max.X, Y: a.Min.Y, Z: a.Max.Z},
		{X: a.Max.X, Y: a.Max.Y, Z: a.Max.Z},
		{X: a.Min.X, Y: a.Max.Y, Z: a.Max.Z},
	}
}

// Octants splits the box at its center into the 8 sub-boxes that share
// that point. Octant i covers the upper x, y, z half of the box when
// bit 0, 1, 2 of i is set, so octant 0 keeps the Min corner and octant 7
// the Max corner. Every octant extent is exactly half the parent's.
func (a Box) Octants() [8]Box {
	c := a.Center()
	var oct [8]Box
	for i := range oct {
		lo, hi := a.Min, c
		if i&1 != 0 {
			lo.X, hi.X = c.X, a.Max.X
		}
		if i&2 != 0 {
			lo.Y, hi.Y = c.Y, a.Max.Y
		}
		if i&4 != 0 {
			lo.Z, hi.Z = c.Z, a.Max.Z
		}
		oct[i] = Box{Min: lo, Max: hi}
	}
	return oct
}
