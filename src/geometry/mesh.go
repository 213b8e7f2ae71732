package geometry

// Mesh is an arena of half-edge entities that reference each other by index.
// It is read-only while an extractor runs and owned by whoever loaded it.
type Mesh struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Edges     []Edge
	Faces     []Face
}

// IsEmpty reports whether the mesh has neither edges nor faces.
func (m *Mesh) IsEmpty() bool {
	return len(m.Edges) == 0 && len(m.Faces) == 0
}

// Validate checks that every index stored in the mesh is in range. The first
// offending reference is returned as an *IndexError.
func (m *Mesh) Validate() error {
	if m == nil {
		return ErrMissingGeometry
	}
	nv, nh, nf := len(m.Vertices), len(m.HalfEdges), len(m.Faces)

	for i, he := range m.HalfEdges {
		if err := checkIndex("halfedge", i, "from", int(he.From), nv); err != nil {
			return err
		}
		if err := checkIndex("halfedge", i, "to", int(he.To), nv); err != nil {
			return err
		}
		if err := checkIndex("halfedge", i, "face", int(he.Face), nf); err != nil {
			return err
		}
		if err := checkIndex("halfedge", i, "next", int(he.Next), nh); err != nil {
			return err
		}
	}
	for i, e := range m.Edges {
		if err := checkIndex("edge", i, "halfedges[0]", int(e.First()), nh); err != nil {
			return err
		}
		if err := checkIndex("edge", i, "halfedges[1]", int(e.Second()), nh); err != nil {
			return err
		}
	}
	for i, f := range m.Faces {
		if err := checkIndex("face", i, "halfedge", int(f.HalfEdge), nh); err != nil {
			return err
		}
	}
	return nil
}

func checkIndex(entity string, owner int, field string, index, n int) error {
	if index < 0 || index >= n {
		return &IndexError{Entity: entity, Owner: owner, Field: field, Index: index, Len: n}
	}
	return nil
}

// FaceHalfEdges walks the cycle of f starting at its half-edge. ok is false
// when the cycle leaves f or does not close within len(HalfEdges) steps.
//
// The mesh must have passed Validate.
func (m *Mesh) FaceHalfEdges(f FaceIndex) (cycle []HalfEdgeIndex, ok bool) {
	start := m.Faces[f].HalfEdge
	he := start
	for range m.HalfEdges {
		if m.HalfEdges[he].Face != f {
			return cycle, false
		}
		cycle = append(cycle, he)
		he = m.HalfEdges[he].Next
		if he == start {
			return cycle, true
		}
	}
	return cycle, false
}

// Triangle returns the three vertices of f in cycle order. Faces whose cycle
// is not exactly three half-edges long fail with ErrNonTriangularFace.
func (m *Mesh) Triangle(f FaceIndex) ([3]VertexIndex, error) {
	cycle, ok := m.FaceHalfEdges(f)
	if !ok || len(cycle) != 3 {
		return [3]VertexIndex{}, &FaceError{Face: f, Err: ErrNonTriangularFace}
	}
	he0, he1 := m.HalfEdges[cycle[0]], m.HalfEdges[cycle[1]]
	return [3]VertexIndex{he0.From, he1.From, he1.To}, nil
}
