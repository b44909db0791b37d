package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Binary STL triangle-soup export and import.

// stlTriangleSize is the size in bytes of an encoded STL triangle.
const stlTriangleSize = 50

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

// CreateSTL renders r to a binary STL file at path. The surface is read
// fully before the file is created, so a failed polygonization leaves no
// partial file behind.
func CreateSTL(path string, r Renderer) error {
	model, err := RenderAll(r)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = WriteSTL(file, model)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteSTL writes model to w in binary STL format and returns the number
// of triangles encoded. Unit normals are recomputed from the vertices;
// degenerate triangles get a zero normal. WriteSTL fails on the first
// write error without encoding further triangles.
func WriteSTL(w io.Writer, model []r3.Triangle) (int, error) {
	if len(model) == 0 {
		return 0, errors.New("empty triangle slice")
	}
	bw := bufio.NewWriter(w)
	header := stlHeader{Count: uint32(len(model))}
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return 0, err
	}
	var b [stlTriangleSize]byte
	for i, triangle := range model {
		stlFromTriangle(triangle).put(b[:])
		if _, err := bw.Write(b[:]); err != nil {
			return i, err
		}
	}
	return len(model), bw.Flush()
}

// readBinarySTL decodes a binary STL stream back into a triangle soup.
// It rejects streams with non-finite or degenerate triangle data.
func readBinarySTL(r io.Reader) ([]r3.Triangle, error) {
	var header stlHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.New("STL header read failed: " + err.Error())
	}
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf    [stlTriangleSize]byte
		d      stlTriangle
		output = make([]r3.Triangle, 0, header.Count)
	)
	for i := 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("%d/%d STL triangles read: %w", i, header.Count, err)
		}
		d.get(buf[:])
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("STL triangle %d: %w", i, err)
		}
		output = append(output, d.triangle())
	}
	return output, nil
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func stlFromTriangle(t r3.Triangle) stlTriangle {
	n := unitNormal(t)
	return stlTriangle{
		Normal:  [3]float32{float32(n.X), float32(n.Y), float32(n.Z)},
		Vertex1: [3]float32{float32(t[0].X), float32(t[0].Y), float32(t[0].Z)},
		Vertex2: [3]float32{float32(t[1].X), float32(t[1].Y), float32(t[1].Z)},
		Vertex3: [3]float32{float32(t[2].X), float32(t[2].Y), float32(t[2].Z)},
	}
}

// unitNormal returns the unit normal of t, or the zero vector when t is
// degenerate.
func unitNormal(t r3.Triangle) r3.Vec {
	n := t.Normal()
	norm := r3.Norm(n)
	if norm == 0 || math.IsNaN(norm) {
		return r3.Vec{}
	}
	return r3.Scale(1/norm, n)
}

func (t stlTriangle) triangle() r3.Triangle {
	return r3.Triangle{
		r3From3F32(t.Vertex1),
		r3From3F32(t.Vertex2),
		r3From3F32(t.Vertex3),
	}
}

func (t stlTriangle) put(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (t *stlTriangle) get(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to unmarshal stlTriangle")
	}
	get3F32(b, &t.Normal)
	get3F32(b[12:], &t.Vertex1)
	get3F32(b[24:], &t.Vertex2)
	get3F32(b[36:], &t.Vertex3)
	// no attributes supported yet.
}

func (t stlTriangle) validate() error {
	if bad3F32(t.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	if bad3F32(t.Vertex1) || bad3F32(t.Vertex2) || bad3F32(t.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	if t.degenerate(1e-12) {
		return errors.New("triangle is degenerate")
	}
	return nil
}

// degenerate returns true if two of the triangle's vertices coincide
// within tol.
func (t stlTriangle) degenerate(tol float32) bool {
	return equalWithin3F32(t.Vertex1, t.Vertex2, tol) ||
		equalWithin3F32(t.Vertex2, t.Vertex3, tol) ||
		equalWithin3F32(t.Vertex3, t.Vertex1, tol)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

func equalWithin3F32(a, b [3]float32, tol float32) bool {
	return math32.Abs(a[0]-b[0]) <= tol &&
		math32.Abs(a[1]-b[1]) <= tol &&
		math32.Abs(a[2]-b[2]) <= tol
}

func r3From3F32(f [3]float32) r3.Vec {
	return r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
}
