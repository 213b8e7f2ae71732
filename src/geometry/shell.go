package geometry

import (
	"fmt"
	"log/slog"
)

// DefaultThickness is the shell offset distance.
const DefaultThickness = 0.1

// PointsPerFace is the number of points ShellExtruder emits for one face:
// top, bottom and six side triangles.
const PointsPerFace = 24

// OffsetMode selects which vertex normals push a face to its bottom copy.
type OffsetMode int

const (
	// OffsetFirstNormal offsets all three corners along the first vertex's
	// normal, so the bottom face stays parallel to the top one.
	OffsetFirstNormal OffsetMode = iota
	// OffsetVertexNormals offsets every corner along its own normal.
	OffsetVertexNormals
)

func (m OffsetMode) String() string {
	switch m {
	case OffsetFirstNormal:
		return "first-normal"
	case OffsetVertexNormals:
		return "vertex-normals"
	default:
		return fmt.Sprintf("OffsetMode(%d)", int(m))
	}
}

// ParseOffsetMode is the inverse of OffsetMode.String.
func ParseOffsetMode(s string) (OffsetMode, error) {
	switch s {
	case "", "first-normal":
		return OffsetFirstNormal, nil
	case "vertex-normals":
		return OffsetVertexNormals, nil
	}
	return 0, fmt.Errorf("unknown offset mode %q", s)
}

// ShellExtruder thickens a triangle mesh into a closed slab per face.
//
// An extruder is not safe for concurrent use; callers sharing one must
// serialize the setters and Extract themselves.
type ShellExtruder struct {
	thickness float64
	mode      OffsetMode
}

func NewShellExtruder() *ShellExtruder {
	return &ShellExtruder{thickness: DefaultThickness, mode: OffsetFirstNormal}
}

// SetThickness changes the offset distance for subsequent calls. Any value
// is accepted; negative values push the bottom copy outward.
func (s *ShellExtruder) SetThickness(v float64) {
	s.thickness = v
}

func (s *ShellExtruder) Thickness() float64 {
	return s.thickness
}

func (s *ShellExtruder) SetOffsetMode(m OffsetMode) {
	s.mode = m
}

func (s *ShellExtruder) OffsetMode() OffsetMode {
	return s.mode
}

// Extract emits PointsPerFace points for every face of m, in face storage
// order. Every face must be a triangle with non-zero vertex normals; the
// first face that is not fails the whole call and no points are returned.
func (s *ShellExtruder) Extract(m *Mesh) (Buffer, error) {
	if m == nil {
		return nil, ErrMissingGeometry
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	out := make(Buffer, 0, PointsPerFace*len(m.Faces))
	for i := range m.Faces {
		f := FaceIndex(i)
		tri, err := m.Triangle(f)
		if err != nil {
			return nil, err
		}
		out, err = s.appendFace(out, m, f, tri)
		if err != nil {
			return nil, err
		}
	}

	Logger().Debug("shell extruded",
		slog.Int("faces", len(m.Faces)),
		slog.Int("points", len(out)),
		slog.Float64("thickness", s.thickness),
		slog.String("mode", s.mode.String()))
	return out, nil
}

func (s *ShellExtruder) appendFace(out Buffer, m *Mesh, f FaceIndex, tri [3]VertexIndex) (Buffer, error) {
	v0, v1, v2 := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
	p0, p1, p2 := v0.Point, v1.Point, v2.Point

	n0, n1, n2 := v0.Normal, v0.Normal, v0.Normal
	if s.mode == OffsetVertexNormals {
		n1, n2 = v1.Normal, v2.Normal
	}
	for _, n := range [...]Point3{n0, n1, n2} {
		if isDegenerate(n) {
			return out, &FaceError{Face: f, Err: ErrDegenerateNormal}
		}
	}

	pt0 := offset(p0, n0, s.thickness)
	pt1 := offset(p1, n1, s.thickness)
	pt2 := offset(p2, n2, s.thickness)

	return append(out,
		// top
		p0, p1, p2,
		// bottom
		pt0, pt1, pt2,
		// sides
		p0, pt0, p1,
		p1, pt0, pt1,
		p1, pt1, p2,
		p2, pt1, pt2,
		p2, pt2, p0,
		p0, pt2, pt0,
	), nil
}
