package render_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/melisa2505/Paralela-marching-cubes/form3"
	"github.com/melisa2505/Paralela-marching-cubes/render"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSTLCreateWriteRead(t *testing.T) {
	const precision = 0.25
	box := form3.Box(r3.Vec{X: 3, Y: 2, Z: 1}, 0.5)
	path := filepath.Join(t.TempDir(), "box.stl")
	r, err := render.NewAdaptiveRenderer(box, precision)
	if err != nil {
		t.Fatal(err)
	}
	if err := render.CreateSTL(path, r); err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	r, err = render.NewAdaptiveRenderer(box, precision)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(r)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if _, err := render.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

// TestSTLPreviewPipeline checks the written STL against an independent
// parser and exercises the rasterized preview end to end.
func TestSTLPreviewPipeline(t *testing.T) {
	dir := t.TempDir()
	stlName := filepath.Join(dir, "sphere.stl")
	r, err := render.NewAdaptiveRenderer(form3.Sphere(1), 0.2)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(r)
	if err != nil {
		t.Fatal(err)
	}
	fp, err := os.Create(stlName)
	if err != nil {
		t.Fatal(err)
	}
	n, err := render.WriteSTL(fp, model)
	if err != nil {
		t.Fatal(err)
	}
	if err := fp.Close(); err != nil {
		t.Fatal(err)
	}
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Triangles) != n {
		t.Errorf("fauxgl parsed %d triangles, wrote %d", len(mesh.Triangles), n)
	}
	pngName := filepath.Join(dir, "sphere.png")
	stlToPNG(t, stlName, pngName)
	img, err := os.Open(pngName)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()
	cfg, err := png.DecodeConfig(img)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		t.Error("empty preview image")
	}
}

func stlToPNG(t testing.TB, stlName, outputname string) {
	const (
		width, height = 640, 360
		fovy          = 30
		near, far     = 1, 10
	)
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		t.Fatal(err)
	}
	var (
		eye    = fauxgl.V(3, 3, 3)
		center = fauxgl.V(0, 0, 0)
		up     = fauxgl.V(0, 0, 1)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*2, height*2)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	image := context.Image()
	image = resize.Resize(width, height, image, resize.Bilinear)
	if err := fauxgl.SavePNG(outputname, image); err != nil {
		t.Fatal(err)
	}
}
