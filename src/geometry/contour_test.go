package geometry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestContourDefaults(t *testing.T) {
	c := NewContourExtractor()
	require.Equal(t, DefaultThreshold, c.Threshold())
	require.Equal(t, 0.8, c.Threshold())

	c.SetThreshold(-42)
	require.Equal(t, -42.0, c.Threshold())
}

func TestContourCoplanarFaces(t *testing.T) {
	out, err := NewContourExtractor().Extract(unitQuad(up))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestContourFoldedFaces(t *testing.T) {
	out, err := NewContourExtractor().Extract(unitQuad(down))
	require.NoError(t, err)

	want := Buffer{{X: 1, Y: 1}, {X: 0, Y: 0}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("contour mismatch (-want +got):\n%s", diff)
	}
}

func TestContourEmptyMesh(t *testing.T) {
	out, err := NewContourExtractor().Extract(&Mesh{})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestContourNilMesh(t *testing.T) {
	_, err := NewContourExtractor().Extract(nil)
	require.ErrorIs(t, err, ErrMissingGeometry)
}

func TestContourThresholdAboveOneTakesBoundaries(t *testing.T) {
	c := NewContourExtractor()
	c.SetThreshold(1.5)

	out, err := c.Extract(unitQuad(up))
	require.NoError(t, err)
	require.Len(t, out, 2*5)

	// Storage order: shared diagonal first, then the four boundaries.
	segs := out.Segments()
	require.Equal(t, [2]Point3{{X: 1, Y: 1}, {X: 0, Y: 0}}, segs[0])
	require.Equal(t, [2]Point3{{X: 0, Y: 0}, {X: 1, Y: 0}}, segs[1])
	require.Equal(t, [2]Point3{{X: 0, Y: 1}, {X: 0, Y: 0}}, segs[4])
}

func TestContourTetrahedron(t *testing.T) {
	m := tetrahedron()
	require.Len(t, m.Edges, 6)

	out, err := NewContourExtractor().Extract(m)
	require.NoError(t, err)
	require.Len(t, out, 12)

	c := NewContourExtractor()
	c.SetThreshold(-0.5)
	out, err = c.Extract(m)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestContourDeterministic(t *testing.T) {
	c := NewContourExtractor()
	for _, m := range []*Mesh{singleTriangle(), unitQuad(down), tetrahedron()} {
		a, err := c.Extract(m)
		require.NoError(t, err)
		b, err := c.Extract(m)
		require.NoError(t, err)
		require.Equal(t, a, b)
		require.Zero(t, len(a)%2)
	}
}

func TestContourThresholdMonotone(t *testing.T) {
	m := unitQuad(Point3{X: 0.6, Z: 0.8})
	c := NewContourExtractor()

	prev := -1
	for _, th := range []float64{1.1, 1.0, 0.9, 0.8, 0.5, 0.0, -1.1} {
		c.SetThreshold(th)
		out, err := c.Extract(m)
		require.NoError(t, err)
		if prev >= 0 {
			require.LessOrEqual(t, len(out), prev, "threshold %v", th)
		}
		prev = len(out)
	}
}

func TestContourDegenerateNormal(t *testing.T) {
	out, err := NewContourExtractor().Extract(unitQuad(Point3{}))
	require.ErrorIs(t, err, ErrDegenerateNormal)
	require.Nil(t, out)

	var ee *EdgeError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, EdgeIndex(0), ee.Edge)

	_, err = NewContourExtractor().Extract(unitQuad(Point3{Z: 5e-324}))
	require.ErrorIs(t, err, ErrDegenerateNormal)
}

func TestContourIndexOutOfRangeHasNoOutput(t *testing.T) {
	m := unitQuad(down)
	m.Edges = append(m.Edges, Edge{HalfEdges: [2]HalfEdgeIndex{0, 6}})

	out, err := NewContourExtractor().Extract(m)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.Nil(t, out)
}

func FuzzContourParity(f *testing.F) {
	f.Add(0.8, 0.0, 0.0, -1.0)
	f.Add(0.0, 0.6, 0.0, 0.8)
	f.Add(2.0, 1.0, 1.0, 1.0)
	f.Fuzz(func(t *testing.T, threshold, x, y, z float64) {
		n := Point3{X: x, Y: y, Z: z}
		if isDegenerate(n) {
			t.Skip()
		}
		c := NewContourExtractor()
		c.SetThreshold(threshold)
		m := unitQuad(n)

		a, err := c.Extract(m)
		require.NoError(t, err)
		require.Zero(t, len(a)%2)

		b, err := c.Extract(m)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})
}
