// Package geomdict loads half-edge meshes from geometry dictionaries, the
// JSON description a host keeps under a string handle:
//
//	{"geomlist": [{"vertices": [...], "halfedges": [...], "edges": [...], "faces": [...]}]}
//
// Only the first geometry of the list is used.
package geomdict

import (
	"encoding/json"
	"fmt"

	"meshderive/src/geometry"
)

type vec3 [3]float64

func (v vec3) point() geometry.Point3 {
	return geometry.Point3{X: v[0], Y: v[1], Z: v[2]}
}

func fromPoint(p geometry.Point3) vec3 {
	return vec3{p.X, p.Y, p.Z}
}

type vertexDesc struct {
	Point  vec3 `json:"point"`
	Normal vec3 `json:"normal"`
}

type halfEdgeDesc struct {
	From int `json:"from"`
	To   int `json:"to"`
	Face int `json:"face"`
	Next int `json:"next"`
}

type edgeDesc struct {
	HalfEdges [2]int `json:"halfedges"`
}

type faceDesc struct {
	HalfEdge int  `json:"halfedge"`
	Normal   vec3 `json:"normal"`
}

type geomDesc struct {
	Vertices  []vertexDesc   `json:"vertices"`
	HalfEdges []halfEdgeDesc `json:"halfedges"`
	Edges     []edgeDesc     `json:"edges"`
	Faces     []faceDesc     `json:"faces"`
}

// dictionary is the top level of a geometry dictionary.
type dictionary struct {
	GeomList []*geomDesc `json:"geomlist"`
}

// Decode parses a geometry dictionary and returns its first mesh. A
// dictionary without geometry fails with geometry.ErrMissingGeometry.
// Indices are copied as-is; geometry extractors validate them.
func Decode(data []byte) (*geometry.Mesh, error) {
	var d dictionary
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse geometry dictionary: %w", err)
	}
	if len(d.GeomList) == 0 || d.GeomList[0] == nil {
		return nil, geometry.ErrMissingGeometry
	}
	return d.GeomList[0].mesh(), nil
}

func (g *geomDesc) mesh() *geometry.Mesh {
	m := &geometry.Mesh{
		Vertices:  make([]geometry.Vertex, len(g.Vertices)),
		HalfEdges: make([]geometry.HalfEdge, len(g.HalfEdges)),
		Edges:     make([]geometry.Edge, len(g.Edges)),
		Faces:     make([]geometry.Face, len(g.Faces)),
	}
	for i, v := range g.Vertices {
		m.Vertices[i] = geometry.Vertex{Point: v.Point.point(), Normal: v.Normal.point()}
	}
	for i, he := range g.HalfEdges {
		m.HalfEdges[i] = geometry.HalfEdge{
			From: geometry.VertexIndex(he.From),
			To:   geometry.VertexIndex(he.To),
			Face: geometry.FaceIndex(he.Face),
			Next: geometry.HalfEdgeIndex(he.Next),
		}
	}
	for i, e := range g.Edges {
		m.Edges[i] = geometry.Edge{HalfEdges: [2]geometry.HalfEdgeIndex{
			geometry.HalfEdgeIndex(e.HalfEdges[0]),
			geometry.HalfEdgeIndex(e.HalfEdges[1]),
		}}
	}
	for i, f := range g.Faces {
		m.Faces[i] = geometry.Face{HalfEdge: geometry.HalfEdgeIndex(f.HalfEdge), Normal: f.Normal.point()}
	}
	return m
}

// Encode writes m as a single-geometry dictionary.
func Encode(m *geometry.Mesh) ([]byte, error) {
	if m == nil {
		return nil, geometry.ErrMissingGeometry
	}
	g := &geomDesc{
		Vertices:  make([]vertexDesc, len(m.Vertices)),
		HalfEdges: make([]halfEdgeDesc, len(m.HalfEdges)),
		Edges:     make([]edgeDesc, len(m.Edges)),
		Faces:     make([]faceDesc, len(m.Faces)),
	}
	for i, v := range m.Vertices {
		g.Vertices[i] = vertexDesc{Point: fromPoint(v.Point), Normal: fromPoint(v.Normal)}
	}
	for i, he := range m.HalfEdges {
		g.HalfEdges[i] = halfEdgeDesc{From: int(he.From), To: int(he.To), Face: int(he.Face), Next: int(he.Next)}
	}
	for i, e := range m.Edges {
		g.Edges[i] = edgeDesc{HalfEdges: [2]int{int(e.First()), int(e.Second())}}
	}
	for i, f := range m.Faces {
		g.Faces[i] = faceDesc{HalfEdge: int(f.HalfEdge), Normal: fromPoint(f.Normal)}
	}
	return json.Marshal(dictionary{GeomList: []*geomDesc{g}})
}
