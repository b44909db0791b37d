// Command mcubes polygonizes implicit surfaces into OBJ or STL meshes
// with adaptive marching cubes. It can also render a PNG preview of the
// result and chart how polygonization time scales with worker count.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/fogleman/fauxgl"
	mc "github.com/melisa2505/Paralela-marching-cubes"
	"github.com/melisa2505/Paralela-marching-cubes/form3"
	"github.com/melisa2505/Paralela-marching-cubes/render"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var surfaces = map[string]mc.BoundedField3{
	"barth":      form3.BarthSextic(),
	"mandelbulb": form3.Mandelbulb(),
	"sphere":     form3.Sphere(1),
	"box":        form3.Box(r3.Vec{X: 2, Y: 1.2, Z: 1}, 0.1),
	"cylinder":   form3.Cylinder(2, 0.75, 0.1),
	"capsule":    form3.Capsule(2, 0.5),
	"dumbbell": mc.Union3D(
		mc.Translate3D(form3.Sphere(0.6), r3.Vec{X: -1}),
		mc.Translate3D(form3.Sphere(0.6), r3.Vec{X: 1}),
		form3.Box(r3.Vec{X: 2, Y: 0.3, Z: 0.3}, 0.05),
	),
}

func main() {
	var (
		surface   = flag.String("surface", "barth", "surface to polygonize: "+strings.Join(surfaceNames(), "|"))
		precision = flag.Float64("precision", 0.1, "leaf cell size; smaller is finer")
		workers   = flag.Int("workers", runtime.GOMAXPROCS(0), "number of concurrent workers")
		samples   = flag.Int("samples", 0, "containment probe samples per cell (0 uses the default)")
		seed      = flag.Uint64("seed", 1, "base seed for containment probes")
		output    = flag.String("o", "surface.obj", "output mesh path (.obj or .stl)")
		preview   = flag.String("png", "", "optional PNG preview path")
		bench     = flag.String("bench", "", "optional scalability chart path; times worker counts up to -workers")
	)
	flag.Parse()

	field, ok := surfaces[*surface]
	if !ok {
		log.Fatalf("unknown surface %q, have %s", *surface, strings.Join(surfaceNames(), "|"))
	}
	p := render.Polygonizer{
		Precision:    *precision,
		Workers:      *workers,
		ProbeSamples: *samples,
		Seed:         *seed,
	}

	start := time.Now()
	model, err := p.Polygonize(field, field.Bounds())
	if err != nil {
		log.Fatal("polygonize: ", err)
	}
	elapsed := time.Since(start)
	if err := writeModel(*output, model); err != nil {
		log.Fatal("write mesh: ", err)
	}
	fmt.Printf("%s: %d triangles in %v\n", *output, len(model), elapsed)

	if *preview != "" {
		if err := meshToPNG(*output, *preview); err != nil {
			log.Fatal("render preview: ", err)
		}
		fmt.Println("preview written to", *preview)
	}
	if *bench != "" {
		if err := benchWorkers(field, p, *bench); err != nil {
			log.Fatal("chart scalability: ", err)
		}
	}
}

func surfaceNames() []string {
	names := make([]string, 0, len(surfaces))
	for name := range surfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeModel(path string, model []r3.Triangle) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	switch ext := filepath.Ext(path); ext {
	case ".stl":
		_, err = render.WriteSTL(fp, model)
	case ".obj":
		err = render.WriteOBJ(fp, model)
	default:
		err = fmt.Errorf("unsupported mesh extension %q", ext)
	}
	return err
}

// meshToPNG renders the mesh written at meshPath with a Phong shader and
// saves the downsampled image at pngPath.
func meshToPNG(meshPath, pngPath string) error {
	var (
		mesh *fauxgl.Mesh
		err  error
	)
	if filepath.Ext(meshPath) == ".stl" {
		mesh, err = fauxgl.LoadSTL(meshPath)
	} else {
		mesh, err = fauxgl.LoadOBJ(meshPath)
	}
	if err != nil {
		return err
	}
	const (
		width, height = 1920, 1080 // output width and height in pixels
		scale         = 1          // optional supersampling
		fovy          = 30         // vertical field of view in degrees
		near, far     = 1, 10
	)
	var (
		eye    = fauxgl.V(3, 3, 3)
		center = fauxgl.V(0, 0, 0)
		up     = fauxgl.V(0, 0, 1)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor("#468966")
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	img := resize.Resize(width, height, context.Image(), resize.Bilinear)
	return fauxgl.SavePNG(pngPath, img)
}

// benchWorkers polygonizes the field once per worker count, printing a
// timing table and charting measured speedup against the ideal.
func benchWorkers(field mc.BoundedField3, base render.Polygonizer, path string) error {
	maxWorkers := base.Workers
	if maxWorkers < 1 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	counts := []int{1}
	for n := 2; n <= maxWorkers; n *= 2 {
		counts = append(counts, n)
	}
	if last := counts[len(counts)-1]; last != maxWorkers {
		counts = append(counts, maxWorkers)
	}

	times := make([]float64, len(counts))
	fmt.Println("workers  seconds  speedup  efficiency")
	for i, n := range counts {
		p := base
		p.Workers = n
		start := time.Now()
		model, err := p.Polygonize(field, field.Bounds())
		if err != nil {
			return err
		}
		times[i] = time.Since(start).Seconds()
		speedup := times[0] / times[i]
		fmt.Printf("%7d %8.3f %8.2f %10.2f  (%d triangles)\n",
			n, times[i], speedup, speedup/float64(n), len(model))
	}

	measured := make(plotter.XYs, len(counts))
	ideal := make(plotter.XYs, len(counts))
	for i, n := range counts {
		measured[i].X = float64(n)
		measured[i].Y = times[0] / times[i]
		ideal[i].X = float64(n)
		ideal[i].Y = float64(n)
	}
	plt := plot.New()
	plt.Title.Text = "Adaptive marching cubes scalability"
	plt.X.Label.Text = "workers"
	plt.Y.Label.Text = "speedup"
	if err := plotutil.AddLinePoints(plt, "measured", measured, "ideal", ideal); err != nil {
		return err
	}
	if err := plt.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return err
	}
	fmt.Println("scalability chart written to", path)
	return nil
}
