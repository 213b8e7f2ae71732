package geometry

import (
	"errors"
	"fmt"
)

var (
	ErrMissingGeometry   = errors.New("geometry: no mesh present")
	ErrIndexOutOfRange   = errors.New("geometry: index out of range")
	ErrDegenerateNormal  = errors.New("geometry: zero-length normal")
	ErrNonTriangularFace = errors.New("geometry: face is not a triangle")
)

// IndexError reports an entity that references an index outside its target
// sequence. It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Entity string // owner kind, e.g. "halfedge"
	Owner  int    // owner index
	Field  string // referencing field, e.g. "next"
	Index  int    // offending index
	Len    int    // length of the referenced sequence
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s %d: %s index %d out of range [0,%d)",
		e.Entity, e.Owner, e.Field, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// FaceError attaches a face index to a per-face failure.
type FaceError struct {
	Face FaceIndex
	Err  error
}

func (e *FaceError) Error() string {
	return fmt.Sprintf("face %d: %v", e.Face, e.Err)
}

func (e *FaceError) Unwrap() error {
	return e.Err
}

// EdgeError attaches an edge index to a per-edge failure.
type EdgeError struct {
	Edge EdgeIndex
	Err  error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("edge %d: %v", e.Edge, e.Err)
}

func (e *EdgeError) Unwrap() error {
	return e.Err
}
