package geom

import "github.com/cwbudde/algo-math32/math32"

// Linear is the arithmetic surface shared by the composite types in
// this package: closed addition, subtraction, and scalar multiplication.
type Linear[T any] interface {
	Add(T) T
	Sub(T) T
	Scale(float32) T
}

// Lerp linearly interpolates from a to b by t, clamping t to [0, 1].
func Lerp[T Linear[T]](a, b T, t float32) T {
	return LerpUnclamped(a, b, math32.Clamp01(t))
}

// LerpUnclamped linearly interpolates from a to b by t without clamping.
func LerpUnclamped[T Linear[T]](a, b T, t float32) T {
	return a.Add(b.Sub(a).Scale(t))
}
