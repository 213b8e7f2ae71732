package geomdict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"meshderive/src/geometry"
)

// ErrNotFound is returned when a handle names no stored dictionary.
var ErrNotFound = errors.New("geomdict: dictionary not found")

// Store resolves a handle to the raw dictionary bytes.
type Store interface {
	Get(ctx context.Context, handle string) ([]byte, error)
}

// MemoryStore keeps dictionaries in a map. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	dicts map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{dicts: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, handle string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dicts[handle] = append([]byte(nil), body...)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, handle string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	body, ok := s.dicts[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, handle)
	}
	return body, nil
}

func (s *MemoryStore) Delete(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dicts, handle)
	return nil
}

// Handles lists the stored handles in sorted order.
func (s *MemoryStore) Handles(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.dicts))
	for h := range s.dicts {
		out = append(out, h)
	}
	sort.Strings(out)
	return out, nil
}

// Loader turns handles into meshes.
type Loader struct {
	Store Store
}

func NewLoader(s Store) *Loader {
	return &Loader{Store: s}
}

// LoadMesh fetches the dictionary stored under handle and decodes its first
// geometry.
func (l *Loader) LoadMesh(ctx context.Context, handle string) (*geometry.Mesh, error) {
	body, err := l.Store.Get(ctx, handle)
	if err != nil {
		return nil, err
	}
	m, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("dictionary %q: %w", handle, err)
	}
	geometry.Logger().Debug("mesh loaded",
		slog.String("handle", handle),
		slog.Int("vertices", len(m.Vertices)),
		slog.Int("halfedges", len(m.HalfEdges)),
		slog.Int("edges", len(m.Edges)),
		slog.Int("faces", len(m.Faces)))
	return m, nil
}
