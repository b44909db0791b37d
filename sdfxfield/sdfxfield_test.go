package sdfxfield_test

import (
	"math"
	"os"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/melisa2505/Paralela-marching-cubes/form3"
	"github.com/melisa2505/Paralela-marching-cubes/render"
	"github.com/melisa2505/Paralela-marching-cubes/sdfxfield"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestFieldFromSDFX(t *testing.T) {
	solid, err := sdf.Box3D(v3.Vec{X: 1, Y: 1, Z: 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	field := sdfxfield.Field(solid)
	if got := field.Evaluate(r3.Vec{}); got >= 0 {
		t.Errorf("center: got %g, want negative", got)
	}
	if got := field.Evaluate(r3.Vec{X: 2}); got <= 0 {
		t.Errorf("outside: got %g, want positive", got)
	}
	want := r3.Box{Min: r3.Vec{X: -0.5, Y: -0.5, Z: -0.5}, Max: r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}}
	if got := field.Bounds(); got != want {
		t.Errorf("bounds: got %+v want %+v", got, want)
	}
}

func TestSDF3FromField(t *testing.T) {
	s := sdfxfield.SDF3(form3.Sphere(1))
	if got := s.Evaluate(v3.Vec{}); math.Abs(got+1) > 1e-12 {
		t.Errorf("center: got %g want -1", got)
	}
	bb := s.BoundingBox()
	if bb.Min.X != -1 || bb.Min.Y != -1 || bb.Min.Z != -1 ||
		bb.Max.X != 1 || bb.Max.Y != 1 || bb.Max.Z != 1 {
		t.Errorf("bounding box: got %+v", bb)
	}
}

func TestUniformTriangles(t *testing.T) {
	model := sdfxfield.UniformTriangles(sdfxfield.SDF3(form3.Sphere(1)), 20)
	if len(model) == 0 {
		t.Fatal("no triangles from uniform renderer")
	}
	worst := 0.0
	for _, tri := range model {
		for _, v := range tri {
			if r := math.Abs(r3.Norm(v) - 1); r > worst {
				worst = r
			}
		}
	}
	if worst > 0.25 {
		t.Errorf("worst vertex residual %g from unit sphere", worst)
	}
}

func TestNilArgumentsPanic(t *testing.T) {
	for _, test := range []struct {
		name string
		fn   func()
	}{
		{name: "Field", fn: func() { sdfxfield.Field(nil) }},
		{name: "SDF3", fn: func() { sdfxfield.SDF3(nil) }},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s(nil): no panic", test.name)
				}
			}()
			test.fn()
		}()
	}
}

// The two benchmarks polygonize the same solid through the adaptive
// octree and through sdfx's fixed-grid renderer at comparable output
// resolution.

func BenchmarkAdaptiveBox(b *testing.B) {
	solid, err := sdf.Box3D(v3.Vec{X: 2, Y: 1.5, Z: 1}, 0.1)
	if err != nil {
		b.Fatal(err)
	}
	field := sdfxfield.Field(solid)
	bounds := field.Bounds()
	// pad so the surface does not lie on the sampled volume faces
	bounds.Min = r3.Scale(1.01, bounds.Min)
	bounds.Max = r3.Scale(1.01, bounds.Max)
	p := render.Polygonizer{Precision: 0.05, ProbeSamples: 1000, Seed: 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Polygonize(field, bounds); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUniformBox(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	solid, err := sdf.Box3D(v3.Vec{X: 2, Y: 1.5, Z: 1}, 0.1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sdfxfield.UniformTriangles(solid, 40)
	}
}
