package geometry

// Buffer is the flat, ordered point list produced by one extraction call.
// Contour buffers hold line segments (pairs), shell buffers hold triangles.
type Buffer []Point3

func (b Buffer) Len() int {
	return len(b)
}

// Segments groups the buffer into line segments. A trailing odd point is
// dropped.
func (b Buffer) Segments() [][2]Point3 {
	segs := make([][2]Point3, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		segs = append(segs, [2]Point3{b[i], b[i+1]})
	}
	return segs
}

// Triangles groups the buffer into triangles. Trailing points that do not
// complete a triangle are dropped.
func (b Buffer) Triangles() [][3]Point3 {
	tris := make([][3]Point3, 0, len(b)/3)
	for i := 0; i+2 < len(b); i += 3 {
		tris = append(tris, [3]Point3{b[i], b[i+1], b[i+2]})
	}
	return tris
}

// Float32s flattens the buffer to x,y,z triples, the layout of a 3-plane
// float32 matrix or a tightly packed vertex buffer.
func (b Buffer) Float32s() []float32 {
	out := make([]float32, 0, 3*len(b))
	for _, p := range b {
		out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return out
}
