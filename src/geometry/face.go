package geometry

// FaceIndex addresses Mesh.Faces.
type FaceIndex int

// Face points at any one half-edge of its cycle and carries the plane normal.
type Face struct {
	HalfEdge HalfEdgeIndex
	Normal   Point3
}

// GetNormal returns the face plane normal as stored, without normalization.
func (f Face) GetNormal() Point3 {
	return f.Normal
}
