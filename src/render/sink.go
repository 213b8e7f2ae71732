// Package render hands extraction buffers to downstream consumers: named
// float32 matrices, Vulkan vertex buffers and STL files.
package render

import (
	"meshderive/src/geometry"
)

// Primitive tells a consumer how to group the points of a buffer.
type Primitive int

const (
	Lines Primitive = iota
	Triangles
)

func (p Primitive) String() string {
	if p == Triangles {
		return "triangles"
	}
	return "lines"
}

// Vertices returns the points per primitive.
func (p Primitive) Vertices() int {
	if p == Triangles {
		return 3
	}
	return 2
}

// Sink accepts a finished buffer for the consumer named by dest.
type Sink interface {
	Emit(dest string, p Primitive, buf geometry.Buffer) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(dest string, p Primitive, buf geometry.Buffer) error

func (f SinkFunc) Emit(dest string, p Primitive, buf geometry.Buffer) error {
	return f(dest, p, buf)
}
