package render

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"

	"meshderive/src/geometry"
)

const stlHeaderSize = 80

// stlTri is the on-disk binary STL record.
type stlTri struct {
	N, V1, V2, V3 [3]float32
	_             uint16 // unused attribute byte count
}

func vec32(p geometry.Point3) [3]float32 {
	return [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
}

// facetNormal is the right-handed unit normal of t, or zero when t is
// degenerate (as the side walls of a zero-thickness shell are).
func facetNormal(t [3]geometry.Point3) geometry.Point3 {
	n := r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
	if l := r3.Norm(n); l > 0 {
		return r3.Scale(1/l, n)
	}
	return geometry.Point3{}
}

// WriteSTL writes a triangle buffer as binary STL. The header carries name.
func WriteSTL(w io.Writer, name string, buf geometry.Buffer) error {
	if buf.Len()%3 != 0 {
		return fmt.Errorf("stl: %d points do not form whole triangles", buf.Len())
	}
	tris := buf.Triangles()

	var header [stlHeaderSize]byte
	copy(header[:], name)
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tris))); err != nil {
		return fmt.Errorf("error writing triangle count: %w", err)
	}
	for _, t := range tris {
		rec := stlTri{N: vec32(facetNormal(t)), V1: vec32(t[0]), V2: vec32(t[1]), V3: vec32(t[2])}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("error writing triangle: %w", err)
		}
	}
	return nil
}

// STLSink writes each emitted triangle buffer to Dir/<dest>.stl. Line
// buffers are rejected.
type STLSink struct {
	Dir string
}

func (s STLSink) Emit(dest string, p Primitive, buf geometry.Buffer) (err error) {
	if p != Triangles {
		return fmt.Errorf("stl: cannot write %s", p)
	}
	path := filepath.Join(s.Dir, filepath.Base(dest)+".stl")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := WriteSTL(w, dest, buf); err != nil {
		return err
	}
	return w.Flush()
}
