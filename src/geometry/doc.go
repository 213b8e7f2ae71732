// Package geometry holds the half-edge mesh model and the two derivations
// computed from it: contour edges (ContourExtractor) and thickened shells
// (ShellExtruder). Entities reference each other by index into the Mesh
// slices; extractors validate those indices before touching any of them.
package geometry
