//go:build !puremath

package math32

import "math"

// Host-delegated realization: every function defers to the platform
// math package, narrowing back to float32. The puremath build replaces
// this file with self-contained algorithms exposing the same surface
// and the same domain/range contract.

// SinCos returns both the sine and cosine of angle (radians).
func SinCos(angle float32) (float32, float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}

// Asin returns the arc sine of value in radians; NaN outside [-1, 1].
func Asin(value float32) float32 { return float32(math.Asin(float64(value))) }

// Acos returns the arc cosine of value in radians; NaN outside [-1, 1].
func Acos(value float32) float32 { return float32(math.Acos(float64(value))) }

// Atan returns the arc tangent of value in radians.
func Atan(value float32) float32 { return float32(math.Atan(float64(value))) }

// Atan2 returns the full-circle arc tangent of y/x in radians, using
// the signs of both arguments to pick the quadrant. Atan2(0, 0) is 0.
func Atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

// Exp returns e**value.
func Exp(value float32) float32 { return float32(math.Exp(float64(value))) }

// Exp2 returns 2**value.
func Exp2(value float32) float32 { return float32(math.Exp2(float64(value))) }

// Ln returns the natural logarithm of value. Ln(0) is -Inf, negative
// inputs yield NaN, Ln(+Inf) is +Inf.
func Ln(value float32) float32 { return float32(math.Log(float64(value))) }

// Ln1p returns the natural logarithm of value plus one.
func Ln1p(value float32) float32 { return float32(math.Log1p(float64(value))) }

// Log returns the logarithm of value in the given base.
func Log(value, base float32) float32 {
	return float32(math.Log(float64(value)) / math.Log(float64(base)))
}

// Log2 returns the base-2 logarithm of value.
func Log2(value float32) float32 { return float32(math.Log2(float64(value))) }

// Log10 returns the base-10 logarithm of value.
func Log10(value float32) float32 { return float32(math.Log10(float64(value))) }

// Sqrt returns the square root of value; negative inputs yield NaN.
func Sqrt(value float32) float32 { return float32(math.Sqrt(float64(value))) }

// Sinh returns the hyperbolic sine of value.
func Sinh(value float32) float32 { return float32(math.Sinh(float64(value))) }

// Cosh returns the hyperbolic cosine of value.
func Cosh(value float32) float32 { return float32(math.Cosh(float64(value))) }

// Tanh returns the hyperbolic tangent of value.
func Tanh(value float32) float32 { return float32(math.Tanh(float64(value))) }

// Asinh returns the inverse hyperbolic sine of value.
func Asinh(value float32) float32 { return float32(math.Asinh(float64(value))) }

// Acosh returns the inverse hyperbolic cosine of value; NaN below 1.
func Acosh(value float32) float32 { return float32(math.Acosh(float64(value))) }

// Atanh returns the inverse hyperbolic tangent of value; ±1 yields ±Inf.
func Atanh(value float32) float32 { return float32(math.Atanh(float64(value))) }

// Trunc returns value with its fractional part discarded.
func Trunc(value float32) float32 { return float32(math.Trunc(float64(value))) }

// Floor returns the largest integer value less than or equal to value.
func Floor(value float32) float32 { return float32(math.Floor(float64(value))) }

// Ceil returns the smallest integer value greater than or equal to value.
func Ceil(value float32) float32 { return float32(math.Ceil(float64(value))) }

// Round returns value rounded to the nearest integer, ties away from zero.
func Round(value float32) float32 { return float32(math.Round(float64(value))) }
