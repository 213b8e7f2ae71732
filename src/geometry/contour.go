package geometry

import "log/slog"

// DefaultThreshold is the cosine below which an edge is a contour.
const DefaultThreshold = 0.8

// ContourExtractor emits the edges whose two adjacent face normals diverge,
// i.e. whose dot product falls below the threshold.
//
// An extractor is not safe for concurrent use; callers sharing one must
// serialize SetThreshold and Extract themselves.
type ContourExtractor struct {
	threshold float64
}

func NewContourExtractor() *ContourExtractor {
	return &ContourExtractor{threshold: DefaultThreshold}
}

// SetThreshold changes the cosine threshold for subsequent calls. Any value
// is accepted; above 1 every edge qualifies.
func (c *ContourExtractor) SetThreshold(v float64) {
	c.threshold = v
}

func (c *ContourExtractor) Threshold() float64 {
	return c.threshold
}

// Extract walks m.Edges in storage order and appends the from/to points of
// the first half-edge of every contour edge. The result always has an even
// length. On error no points are returned.
func (c *ContourExtractor) Extract(m *Mesh) (Buffer, error) {
	if m == nil {
		return nil, ErrMissingGeometry
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	out := Buffer{}
	for i, e := range m.Edges {
		he0 := m.HalfEdges[e.First()]
		he1 := m.HalfEdges[e.Second()]

		n0 := m.Faces[he0.Face].GetNormal()
		n1 := m.Faces[he1.Face].GetNormal()
		if isDegenerate(n0) || isDegenerate(n1) {
			return nil, &EdgeError{Edge: EdgeIndex(i), Err: ErrDegenerateNormal}
		}

		if Dot(n0, n1) < c.threshold {
			out = append(out, m.Vertices[he0.From].Point, m.Vertices[he0.To].Point)
		}
	}

	Logger().Debug("contours extracted",
		slog.Int("edges", len(m.Edges)),
		slog.Int("segments", len(out)/2),
		slog.Float64("threshold", c.threshold))
	return out, nil
}
