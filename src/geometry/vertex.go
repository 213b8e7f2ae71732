package geometry

// VertexIndex addresses Mesh.Vertices.
type VertexIndex int

type Vertex struct {
	Point  Point3
	Normal Point3
}
