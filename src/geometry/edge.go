package geometry

// HalfEdgeIndex addresses Mesh.HalfEdges.
type HalfEdgeIndex int

// EdgeIndex addresses Mesh.Edges.
type EdgeIndex int

// HalfEdge is one directed side of a face. Following Next stays on Face.
type HalfEdge struct {
	From VertexIndex
	To   VertexIndex
	Face FaceIndex
	Next HalfEdgeIndex
}

// Edge pairs the two opposing half-edges bordering it. On a boundary both
// half-edges may resolve to the same face.
type Edge struct {
	HalfEdges [2]HalfEdgeIndex
}

func (e Edge) First() HalfEdgeIndex {
	return e.HalfEdges[0]
}

func (e Edge) Second() HalfEdgeIndex {
	return e.HalfEdges[1]
}
