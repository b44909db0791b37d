package render

import (
	"errors"
	"io"

	mc "github.com/melisa2505/Paralela-marching-cubes"
	"github.com/melisa2505/Paralela-marching-cubes/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer is a source of triangles approximating a surface. Renderers
// return io.EOF once the surface is exhausted.
type Renderer interface {
	ReadTriangles(t []r3.Triangle) (int, error)
}

// boundsPad scales a field's own bounding box before polygonization so
// surface lying exactly on a bounds face still closes.
const boundsPad = 1.01

// adaptive streams the result of an adaptive polygonization run.
type adaptive struct {
	p     Polygonizer
	field mc.BoundedField3
	buf   triangleBuffer
	run   bool
}

// NewAdaptiveRenderer returns a Renderer that streams the adaptive
// polygonization of f over the field's own bounds, padded by 1% about
// their center. The polygonization runs on the first ReadTriangles call
// and always to completion.
func NewAdaptiveRenderer(f mc.BoundedField3, precision float64) (Renderer, error) {
	if f == nil {
		return nil, errors.New("nil field")
	}
	if precision <= 0 || !isFinite(precision) {
		return nil, errors.New("precision must be positive and finite")
	}
	if d3.LTEZero(d3.Box(f.Bounds()).Size()) {
		return nil, errors.New("field bounds are degenerate")
	}
	return &adaptive{
		p:     Polygonizer{Precision: precision},
		field: f,
	}, nil
}

// ReadTriangles implements the Renderer interface.
func (a *adaptive) ReadTriangles(dst []r3.Triangle) (int, error) {
	if !a.run {
		bb := d3.Box(a.field.Bounds()).ScaleAboutCenter(boundsPad)
		m, err := a.p.Polygonize(a.field, r3.Box(bb))
		if err != nil {
			return 0, err
		}
		a.buf.Write(m)
		a.run = true
	}
	if a.buf.Len() == 0 {
		return 0, io.EOF
	}
	return a.buf.Read(dst), nil
}
