package render_test

import (
	"math"
	"testing"

	mc "github.com/melisa2505/Paralela-marching-cubes"
	"github.com/melisa2505/Paralela-marching-cubes/form3"
	"github.com/melisa2505/Paralela-marching-cubes/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestConstantFieldsProduceNothing(t *testing.T) {
	bounds := r3.Box{Min: r3.Vec{X: -1, Y: -1, Z: -1}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
	for _, test := range []struct {
		name  string
		value float64
	}{
		{name: "all outside", value: 1},
		{name: "all inside", value: -1},
	} {
		value := test.value
		field := mc.Func3(func(x, y, z float64) float64 { return value })
		model, err := render.Polygonize(field, bounds, 0.25, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(model) != 0 {
			t.Errorf("%s: got %d triangles, want 0", test.name, len(model))
		}
	}
}

func TestUnitSphereVertexResiduals(t *testing.T) {
	sphere := mc.Func3(func(x, y, z float64) float64 { return x*x + y*y + z*z - 1 })
	bounds := r3.Box{Min: r3.Vec{X: -2, Y: -2, Z: -2}, Max: r3.Vec{X: 2, Y: 2, Z: 2}}
	p := render.Polygonizer{Precision: 0.05, ProbeSamples: 600, Seed: 1}
	model, err := p.Polygonize(sphere, bounds)
	if err != nil {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Fatal("no triangles for unit sphere")
	}
	worst := 0.0
	for _, tri := range model {
		for _, v := range tri {
			if r := math.Abs(sphere.Evaluate(v)); r > worst {
				worst = r
			}
		}
	}
	if worst >= 0.1 {
		t.Errorf("worst vertex residual %g, want below 0.1", worst)
	}
}

func TestWorkerCountInvariance(t *testing.T) {
	sphere := form3.Sphere(1)
	bounds := r3.Box{Min: r3.Vec{X: -1.25, Y: -1.25, Z: -1.25}, Max: r3.Vec{X: 1.25, Y: 1.25, Z: 1.25}}
	base := render.Polygonizer{Precision: 0.1, Workers: 1, ProbeSamples: 400, Seed: 3}
	want, err := base.Polygonize(sphere, bounds)
	if err != nil {
		t.Fatal(err)
	}
	if len(want) == 0 {
		t.Fatal("no triangles for sphere")
	}
	for _, workers := range []int{2, 3, 8, 32} {
		p := base
		p.Workers = workers
		got, err := p.Polygonize(sphere, bounds)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(want) {
			t.Fatalf("workers=%d: got %d triangles, want %d", workers, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("workers=%d: triangle %d differs from single-worker run", workers, i)
			}
		}
	}
}

func BenchmarkPolygonizeSerial(b *testing.B) {
	benchmarkPolygonize(b, 1)
}

func BenchmarkPolygonizeParallel(b *testing.B) {
	benchmarkPolygonize(b, 0) // 0 selects all CPUs
}

func benchmarkPolygonize(b *testing.B, workers int) {
	sphere := form3.Sphere(1)
	bounds := r3.Box{Min: r3.Vec{X: -1.1, Y: -1.1, Z: -1.1}, Max: r3.Vec{X: 1.1, Y: 1.1, Z: 1.1}}
	p := render.Polygonizer{Precision: 0.02, Workers: workers, ProbeSamples: 1000, Seed: 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		model, err := p.Polygonize(sphere, bounds)
		if err != nil {
			b.Fatal(err)
		}
		if len(model) == 0 {
			b.Fatal("no triangles")
		}
	}
}
