// Package geom provides float32 vector, quaternion, plane, and ray
// primitives built on the math32 kernel, so every operation carries the
// kernel's portability guarantees.
//
// Composite values compare by per-component tolerance rather than bit
// equality; see the Approx method on each type. Degenerate inputs fall
// back to well-defined results instead of returning errors: dividing by
// a zero scalar yields the zero value, normalizing a zero vector yields
// the zero vector, and near-parallel spherical interpolation falls back
// to normalized linear interpolation.
package geom
