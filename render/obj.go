package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// Wavefront OBJ text export.

// CreateOBJ renders r to an OBJ file at path. The surface is read fully
// before the file is created, so a failed polygonization leaves no
// partial file behind.
func CreateOBJ(path string, r Renderer) error {
	model, err := RenderAll(r)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WriteOBJ(file, model)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteOBJ writes model to w as Wavefront OBJ text: three "v" vertex
// lines per triangle followed by one "f" face line per triangle
// referencing its own three vertices. Vertices are duplicated across
// triangles, matching the soup structure; consumers needing a welded
// mesh must merge vertices within a tolerance themselves. WriteOBJ
// fails on the first write error.
func WriteOBJ(w io.Writer, model []r3.Triangle) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# adaptive marching cubes surface\n# %d triangles\n", len(model)); err != nil {
		return err
	}
	for _, t := range model {
		_, err := fmt.Fprintf(bw, "v %g %g %g\nv %g %g %g\nv %g %g %g\n",
			t[0].X, t[0].Y, t[0].Z,
			t[1].X, t[1].Y, t[1].Z,
			t[2].X, t[2].Y, t[2].Z)
		if err != nil {
			return err
		}
	}
	for i := range model {
		// OBJ vertex references are 1-based.
		base := 3*i + 1
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", base, base+1, base+2); err != nil {
			return err
		}
	}
	return bw.Flush()
}
