package render

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"meshderive/src/geometry"
)

// Planes is the number of float32 planes per matrix cell (x, y, z).
const Planes = 3

// Matrix is a one-dimensional, 3-plane float32 matrix. Cell i holds point i
// of the buffer it was built from.
type Matrix struct {
	Name      string
	Primitive Primitive
	Dim       int
	Data      []float32 // Dim*Planes values, cell-major
}

// NewMatrix copies buf into a freshly named matrix.
func NewMatrix(p Primitive, buf geometry.Buffer) *Matrix {
	return &Matrix{
		Name:      "u" + uuid.NewString(),
		Primitive: p,
		Dim:       buf.Len(),
		Data:      buf.Float32s(),
	}
}

// Cell returns the three planes of cell i.
func (m *Matrix) Cell(i int) [Planes]float32 {
	var c [Planes]float32
	copy(c[:], m.Data[i*Planes:(i+1)*Planes])
	return c
}

// MatrixSink keeps the most recent matrix sent to each destination and
// forwards every new one to OnMatrix, if set. Safe for concurrent use.
type MatrixSink struct {
	OnMatrix func(dest string, m *Matrix)

	mu      sync.Mutex
	outlets map[string]*Matrix
}

func NewMatrixSink() *MatrixSink {
	return &MatrixSink{outlets: make(map[string]*Matrix)}
}

func (s *MatrixSink) Emit(dest string, p Primitive, buf geometry.Buffer) error {
	if n := buf.Len() % p.Vertices(); n != 0 {
		return fmt.Errorf("%s buffer of %d points has %d trailing points", p, buf.Len(), n)
	}
	m := NewMatrix(p, buf)

	s.mu.Lock()
	if s.outlets == nil {
		s.outlets = make(map[string]*Matrix)
	}
	s.outlets[dest] = m
	fn := s.OnMatrix
	s.mu.Unlock()

	geometry.Logger().Debug("matrix emitted",
		slog.String("dest", dest),
		slog.String("name", m.Name),
		slog.Int("dim", m.Dim))
	if fn != nil {
		fn(dest, m)
	}
	return nil
}

// Latest returns the last matrix emitted to dest.
func (s *MatrixSink) Latest(dest string) (*Matrix, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.outlets[dest]
	return m, ok
}
