package mc_test

import (
	"math"
	"testing"

	mc "github.com/melisa2505/Paralela-marching-cubes"
	"gonum.org/v1/gonum/spatial/r3"
)

// sphereAt builds a bounded signed distance field for a sphere.
func sphereAt(center r3.Vec, radius float64) mc.BoundedField3 {
	d := r3.Vec{X: radius, Y: radius, Z: radius}
	return mc.Bounded(
		mc.Func3(func(x, y, z float64) float64 {
			return r3.Norm(r3.Sub(r3.Vec{X: x, Y: y, Z: z}, center)) - radius
		}),
		r3.Box{Min: r3.Sub(center, d), Max: r3.Add(center, d)},
	)
}

var probePoints = []r3.Vec{
	{},
	{X: 1},
	{X: -1, Y: 0.5},
	{X: 0.5, Y: -0.25, Z: 0.25},
	{Z: -2},
}

func TestBounded(t *testing.T) {
	box := r3.Box{Min: r3.Vec{X: -3}, Max: r3.Vec{X: 1, Y: 2, Z: 4}}
	f := mc.Bounded(mc.Func3(func(x, y, z float64) float64 { return x + y + z }), box)
	if got := f.Bounds(); got != box {
		t.Errorf("bounds: got %+v want %+v", got, box)
	}
	if got := f.Evaluate(r3.Vec{X: 1, Y: 2, Z: 3}); got != 6 {
		t.Errorf("evaluate: got %g want 6", got)
	}
}

func TestUnion3D(t *testing.T) {
	a := sphereAt(r3.Vec{X: -1}, 0.5)
	b := sphereAt(r3.Vec{X: 1}, 0.5)
	u := mc.Union3D(a, b)
	for _, p := range probePoints {
		want := math.Min(a.Evaluate(p), b.Evaluate(p))
		if got := u.Evaluate(p); got != want {
			t.Errorf("Evaluate(%v): got %g want %g", p, got, want)
		}
	}
	if got := u.Evaluate(r3.Vec{X: -1}); got >= 0 {
		t.Errorf("center of first member: got %g, want negative", got)
	}
	if got := u.Evaluate(r3.Vec{}); got <= 0 {
		t.Errorf("midpoint between disjoint members: got %g, want positive", got)
	}
	want := r3.Box{Min: r3.Vec{X: -1.5, Y: -0.5, Z: -0.5}, Max: r3.Vec{X: 1.5, Y: 0.5, Z: 0.5}}
	if got := u.Bounds(); got != want {
		t.Errorf("bounds: got %+v want %+v", got, want)
	}
}

func TestIntersect3D(t *testing.T) {
	a := sphereAt(r3.Vec{}, 1)
	b := sphereAt(r3.Vec{X: 0.5}, 1)
	s := mc.Intersect3D(a, b)
	for _, p := range probePoints {
		want := math.Max(a.Evaluate(p), b.Evaluate(p))
		if got := s.Evaluate(p); got != want {
			t.Errorf("Evaluate(%v): got %g want %g", p, got, want)
		}
	}
	if got := s.Bounds(); got != a.Bounds() {
		t.Errorf("bounds: got %+v want first argument's %+v", got, a.Bounds())
	}
}

func TestDifference3D(t *testing.T) {
	a := sphereAt(r3.Vec{}, 1)
	b := sphereAt(r3.Vec{X: 0.5}, 0.5)
	s := mc.Difference3D(a, b)
	for _, p := range probePoints {
		want := math.Max(a.Evaluate(p), -b.Evaluate(p))
		if got := s.Evaluate(p); got != want {
			t.Errorf("Evaluate(%v): got %g want %g", p, got, want)
		}
	}
	// The carved region is outside even though it is inside the base.
	if got := s.Evaluate(r3.Vec{X: 0.5}); got <= 0 {
		t.Errorf("inside removed member: got %g, want positive", got)
	}
	if got := s.Evaluate(r3.Vec{X: -0.5}); got >= 0 {
		t.Errorf("inside base away from removed member: got %g, want negative", got)
	}
	if got := s.Bounds(); got != a.Bounds() {
		t.Errorf("bounds: got %+v want base's %+v", got, a.Bounds())
	}
}

func TestTranslate3D(t *testing.T) {
	v := r3.Vec{X: 1, Y: -2, Z: 3}
	orig := sphereAt(r3.Vec{}, 1)
	moved := mc.Translate3D(orig, v)
	for _, p := range probePoints {
		want := orig.Evaluate(r3.Sub(p, v))
		if got := moved.Evaluate(p); got != want {
			t.Errorf("Evaluate(%v): got %g want %g", p, got, want)
		}
	}
	want := r3.Box{Min: r3.Vec{X: 0, Y: -3, Z: 2}, Max: r3.Vec{X: 2, Y: -1, Z: 4}}
	if got := moved.Bounds(); got != want {
		t.Errorf("bounds: got %+v want %+v", got, want)
	}
}

func TestOpsPanicOnBadArguments(t *testing.T) {
	s := sphereAt(r3.Vec{}, 1)
	for _, test := range []struct {
		name string
		fn   func()
	}{
		{name: "Bounded nil field", fn: func() { mc.Bounded(nil, r3.Box{}) }},
		{name: "Union3D single field", fn: func() { mc.Union3D(s) }},
		{name: "Union3D nil member", fn: func() { mc.Union3D(s, nil) }},
		{name: "Intersect3D nil argument", fn: func() { mc.Intersect3D(nil, s) }},
		{name: "Difference3D nil argument", fn: func() { mc.Difference3D(s, nil) }},
		{name: "Translate3D nil field", fn: func() { mc.Translate3D(nil, r3.Vec{}) }},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: no panic", test.name)
				}
			}()
			test.fn()
		}()
	}
}
