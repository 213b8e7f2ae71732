// Package host connects a mesh loader, the geometry extractors and an output
// sink. Each call loads one mesh, runs one extraction and emits one buffer.
package host

import (
	"context"
	"fmt"

	"meshderive/src/geometry"
	"meshderive/src/render"
)

// Loader yields the mesh stored under a handle.
type Loader interface {
	LoadMesh(ctx context.Context, handle string) (*geometry.Mesh, error)
}

// Host owns one extractor of each kind. It is not safe for concurrent use;
// give each goroutine its own Host.
type Host struct {
	Loader   Loader
	Sink     render.Sink
	Contours *geometry.ContourExtractor
	Shell    *geometry.ShellExtruder
}

func New(l Loader, s render.Sink) *Host {
	return &Host{
		Loader:   l,
		Sink:     s,
		Contours: geometry.NewContourExtractor(),
		Shell:    geometry.NewShellExtruder(),
	}
}

// DrawContours emits the contour segments of the mesh under handle to dest.
// Nothing is emitted when loading or extraction fails.
func (h *Host) DrawContours(ctx context.Context, handle, dest string) (geometry.Buffer, error) {
	return h.run(ctx, handle, dest, render.Lines, h.Contours.Extract)
}

// Thicken emits the shell triangles of the mesh under handle to dest.
// Nothing is emitted when loading or extraction fails.
func (h *Host) Thicken(ctx context.Context, handle, dest string) (geometry.Buffer, error) {
	return h.run(ctx, handle, dest, render.Triangles, h.Shell.Extract)
}

func (h *Host) run(ctx context.Context, handle, dest string, p render.Primitive,
	extract func(*geometry.Mesh) (geometry.Buffer, error)) (geometry.Buffer, error) {
	m, err := h.Loader.LoadMesh(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", handle, err)
	}
	buf, err := extract(m)
	if err != nil {
		return nil, fmt.Errorf("extract %s from %q: %w", p, handle, err)
	}
	if err := h.Sink.Emit(dest, p, buf); err != nil {
		return nil, fmt.Errorf("emit %q: %w", dest, err)
	}
	return buf, nil
}
