package geometry

var (
	up   = Point3{Z: 1}
	down = Point3{Z: -1}
)

// singleTriangle is one face (0,0,0),(1,0,0),(0,1,0) with every normal along
// +Z. Each boundary edge pairs a half-edge with itself.
func singleTriangle() *Mesh {
	return &Mesh{
		Vertices: []Vertex{
			{Point: Point3{X: 0, Y: 0, Z: 0}, Normal: up},
			{Point: Point3{X: 1, Y: 0, Z: 0}, Normal: up},
			{Point: Point3{X: 0, Y: 1, Z: 0}, Normal: up},
		},
		HalfEdges: []HalfEdge{
			{From: 0, To: 1, Face: 0, Next: 1},
			{From: 1, To: 2, Face: 0, Next: 2},
			{From: 2, To: 0, Face: 0, Next: 0},
		},
		Edges: []Edge{
			{HalfEdges: [2]HalfEdgeIndex{0, 0}},
			{HalfEdges: [2]HalfEdgeIndex{1, 1}},
			{HalfEdges: [2]HalfEdgeIndex{2, 2}},
		},
		Faces: []Face{{HalfEdge: 0, Normal: up}},
	}
}

// unitQuad is the unit square split along its 0-2 diagonal into two
// triangles. Edge 0 is the shared diagonal; the four boundary edges follow.
// The second face normal is n1.
func unitQuad(n1 Point3) *Mesh {
	return &Mesh{
		Vertices: []Vertex{
			{Point: Point3{X: 0, Y: 0}, Normal: up},
			{Point: Point3{X: 1, Y: 0}, Normal: up},
			{Point: Point3{X: 1, Y: 1}, Normal: up},
			{Point: Point3{X: 0, Y: 1}, Normal: up},
		},
		HalfEdges: []HalfEdge{
			{From: 0, To: 1, Face: 0, Next: 1},
			{From: 1, To: 2, Face: 0, Next: 2},
			{From: 2, To: 0, Face: 0, Next: 0},
			{From: 0, To: 2, Face: 1, Next: 4},
			{From: 2, To: 3, Face: 1, Next: 5},
			{From: 3, To: 0, Face: 1, Next: 3},
		},
		Edges: []Edge{
			{HalfEdges: [2]HalfEdgeIndex{2, 3}},
			{HalfEdges: [2]HalfEdgeIndex{0, 0}},
			{HalfEdges: [2]HalfEdgeIndex{1, 1}},
			{HalfEdges: [2]HalfEdgeIndex{4, 4}},
			{HalfEdges: [2]HalfEdgeIndex{5, 5}},
		},
		Faces: []Face{
			{HalfEdge: 0, Normal: up},
			{HalfEdge: 3, Normal: n1},
		},
	}
}

// quadFace is the unit square as a single four-sided face.
func quadFace() *Mesh {
	return &Mesh{
		Vertices: []Vertex{
			{Point: Point3{X: 0, Y: 0}, Normal: up},
			{Point: Point3{X: 1, Y: 0}, Normal: up},
			{Point: Point3{X: 1, Y: 1}, Normal: up},
			{Point: Point3{X: 0, Y: 1}, Normal: up},
		},
		HalfEdges: []HalfEdge{
			{From: 0, To: 1, Face: 0, Next: 1},
			{From: 1, To: 2, Face: 0, Next: 2},
			{From: 2, To: 3, Face: 0, Next: 3},
			{From: 3, To: 0, Face: 0, Next: 0},
		},
		Faces: []Face{{HalfEdge: 0, Normal: up}},
	}
}

// tetrahedron is a closed mesh with four faces and six interior edges whose
// face normals meet at sharp angles.
func tetrahedron() *Mesh {
	const k = 0.5773502691896258 // 1/sqrt(3)
	pts := []Point3{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}}
	m := &Mesh{}
	for _, p := range pts {
		m.Vertices = append(m.Vertices, Vertex{Point: p, Normal: Point3{X: p.X * k, Y: p.Y * k, Z: p.Z * k}})
	}
	faces := [][3]VertexIndex{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}}
	normals := []Point3{{X: k, Y: k, Z: -k}, {X: k, Y: -k, Z: k}, {X: -k, Y: k, Z: k}, {X: -k, Y: -k, Z: -k}}
	for f, tri := range faces {
		base := HalfEdgeIndex(len(m.HalfEdges))
		for j := 0; j < 3; j++ {
			m.HalfEdges = append(m.HalfEdges, HalfEdge{
				From: tri[j],
				To:   tri[(j+1)%3],
				Face: FaceIndex(f),
				Next: base + HalfEdgeIndex((j+1)%3),
			})
		}
		m.Faces = append(m.Faces, Face{HalfEdge: base, Normal: normals[f]})
	}
	// Pair each half-edge with its twin once.
	for i, a := range m.HalfEdges {
		for j := i + 1; j < len(m.HalfEdges); j++ {
			b := m.HalfEdges[j]
			if a.From == b.To && a.To == b.From {
				m.Edges = append(m.Edges, Edge{HalfEdges: [2]HalfEdgeIndex{HalfEdgeIndex(i), HalfEdgeIndex(j)}})
			}
		}
	}
	return m
}
