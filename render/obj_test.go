package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/melisa2505/Paralela-marching-cubes/form3"
	"github.com/melisa2505/Paralela-marching-cubes/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestWriteOBJ(t *testing.T) {
	model := []r3.Triangle{
		{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		{{X: 0, Y: 0, Z: 0.5}, {X: 1, Y: 0, Z: 0.5}, {X: 0, Y: 1, Z: 0.5}},
	}
	var b bytes.Buffer
	if err := render.WriteOBJ(&b, model); err != nil {
		t.Fatal(err)
	}
	want := `# adaptive marching cubes surface
# 2 triangles
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 0.5
v 1 0 0.5
v 0 1 0.5
f 1 2 3
f 4 5 6
`
	if got := b.String(); got != want {
		t.Errorf("unexpected OBJ text.\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteOBJEmpty(t *testing.T) {
	if err := render.WriteOBJ(&bytes.Buffer{}, nil); err == nil {
		t.Error("no error for empty model")
	}
}

func TestCreateOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.obj")
	r, err := render.NewAdaptiveRenderer(form3.Box(r3.Vec{X: 1, Y: 1, Z: 1}, 0.1), 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if err := render.CreateOBJ(path, r); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "# adaptive marching cubes surface") {
		t.Error("missing OBJ header comment")
	}
	if !strings.Contains(text, "\nf ") {
		t.Error("no faces written")
	}
}
