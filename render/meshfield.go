package render

import (
	"errors"
	"math"

	mc "github.com/melisa2505/Paralela-marching-cubes"
	"github.com/melisa2505/Paralela-marching-cubes/internal/d3"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle-soup field: approximates the signed field of existing mesh
// geometry so imported triangles (an STL file, another run's output) can
// be re-polygonized adaptively.

var (
	_ mc.BoundedField3 = (*meshField)(nil)
	_ kdtree.Interface = meshTriangles{}
	_ kdtree.Bounder   = meshTriangles{}
)

// meshField evaluates an approximate signed distance to a triangle soup
// through nearest-triangle queries on a k-d tree of triangle centroids.
type meshField struct {
	tree kdtree.Tree
	bb   r3.Box
}

// NewMeshField returns a field approximating the signed distance to the
// surface described by model. The sign comes from the winding of the
// nearest triangle, so consistently wound, reasonably dense soups work
// best; the result suits re-polygonization, not exact distance queries.
// NewMeshField errors on an empty model.
func NewMeshField(model []r3.Triangle) (mc.BoundedField3, error) {
	if len(model) == 0 {
		return nil, errors.New("empty triangle slice")
	}
	tris := make(meshTriangles, len(model))
	bb := d3.Box{Min: model[0][0], Max: model[0][0]}
	for i, t := range model {
		tris[i] = meshTriangle(t)
		for _, v := range t {
			bb = bb.Include(v)
		}
	}
	return &meshField{
		tree: *kdtree.New(tris, true),
		bb:   r3.Box(bb),
	}, nil
}

// Evaluate returns the distance from p to the nearest vertex of the
// nearest triangle, negated when p lies behind that triangle's face.
func (s *meshField) Evaluate(p r3.Vec) float64 {
	got, _ := s.tree.Nearest(meshTriangle{p, p, p})
	t := got.(meshTriangle)
	minDist := math.MaxFloat64
	closest := r3.Vec{}
	for i := 0; i < 3; i++ {
		d := r3.Norm(r3.Sub(p, t[i]))
		if d < minDist {
			closest = t[i]
			minDist = d
		}
	}
	cosAlpha := r3.Cos(r3.Triangle(t).Normal(), r3.Sub(p, closest))
	if math.IsNaN(cosAlpha) {
		// p coincides with the vertex or the triangle is degenerate.
		return minDist
	}
	return math.Copysign(minDist, cosAlpha)
}

// Bounds returns the bounding box of the source mesh.
func (s *meshField) Bounds() r3.Box { return s.bb }

type meshTriangles []meshTriangle

type meshTriangle r3.Triangle

func (k meshTriangles) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k meshTriangles) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k meshTriangles) Pivot(d kdtree.Dim) int {
	p := meshPlane{dim: int(d), triangles: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k meshTriangles) Slice(start, end int) kdtree.Interface {
	return k[start:end]
}

func (k meshTriangles) Bounds() *kdtree.Bounding {
	min := r3.Vec{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	max := r3.Scale(-1, min)
	for _, tri := range k {
		tb := tri.Bounds()
		min = d3.MinElem(min, tb.Min.(meshTriangle)[0])
		max = d3.MaxElem(max, tb.Max.(meshTriangle)[0])
	}
	return &kdtree.Bounding{
		Min: meshTriangle{min, min, min},
		Max: meshTriangle{max, max, max},
	}
}

// Compare returns the signed distance of a's centroid from the plane
// passing through b's centroid and perpendicular to the dimension d.
func (a meshTriangle) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return meshComp(a, b.(meshTriangle), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a meshTriangle) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the centroids
// of the receiver and the parameter.
func (a meshTriangle) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.centroid(), b.(meshTriangle).centroid()))
}

func (a meshTriangle) Bounds() *kdtree.Bounding {
	min := d3.MinElem(a[2], d3.MinElem(a[0], a[1]))
	max := d3.MaxElem(a[2], d3.MaxElem(a[0], a[1]))
	return &kdtree.Bounding{
		Min: meshTriangle{min, min, min},
		Max: meshTriangle{max, max, max},
	}
}

func (a meshTriangle) centroid() r3.Vec {
	return r3.Scale(1./3., r3.Add(r3.Add(a[0], a[1]), a[2]))
}

// meshComp compares centroids along one dimension.
func meshComp(a, b meshTriangle, dim int) float64 {
	ac, bc := a.centroid(), b.centroid()
	switch dim {
	case 0:
		return ac.X - bc.X
	case 1:
		return ac.Y - bc.Y
	}
	return ac.Z - bc.Z
}

type meshPlane struct {
	dim       int
	triangles meshTriangles
}

func (p meshPlane) Less(i, j int) bool {
	return meshComp(p.triangles[i], p.triangles[j], p.dim) < 0
}

func (p meshPlane) Swap(i, j int) {
	p.triangles[i], p.triangles[j] = p.triangles[j], p.triangles[i]
}

func (p meshPlane) Len() int { return len(p.triangles) }

func (p meshPlane) Slice(start, end int) kdtree.SortSlicer {
	p.triangles = p.triangles[start:end]
	return p
}
