package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3 is a position or direction in mesh space.
type Point3 = r3.Vec

// Dot is the plain dot product; inputs are not normalized.
func Dot(a, b Point3) float64 {
	return r3.Dot(a, b)
}

// isDegenerate reports whether n cannot be used as a normal direction:
// zero, non-finite, or so short that 1/|n| overflows.
func isDegenerate(n Point3) bool {
	l := r3.Norm(n)
	return l == 0 || math.IsNaN(l) || math.IsInf(l, 0) || math.IsInf(1/l, 0)
}

// offset moves p against the unit direction of n by distance.
func offset(p, n Point3, distance float64) Point3 {
	return r3.Sub(p, r3.Scale(distance, r3.Unit(n)))
}
