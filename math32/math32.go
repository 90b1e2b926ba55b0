package math32

// defaultEpsilon is the tolerance used by Approx. Results that round-trip
// through the approximate transcendental realizations must still compare
// equal, so exact bit equality is never the right test.
const defaultEpsilon float32 = 1e-6

// Abs returns the absolute value of value.
func Abs(value float32) float32 {
	if value < 0 {
		return -value
	}
	return value
}

// AbsInt returns the absolute value of value.
func AbsInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

// Sign returns 1 for positive values and -1 for negative values,
// including negative zero. NaN is passed through.
func Sign(value float32) float32 {
	if value != value {
		return value
	}
	if value < 0 || (value == 0 && 1/value < 0) {
		return -1
	}
	return 1
}

// Approx reports whether a and b differ by less than 1e-6.
func Approx(a, b float32) bool {
	return Abs(a-b) < defaultEpsilon
}

// ApproxEpsilon reports whether a and b differ by less than epsilon.
func ApproxEpsilon(a, b, epsilon float32) bool {
	return Abs(a-b) < epsilon
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// MinMax returns a and b sorted into (min, max) order.
func MinMax(a, b float32) (float32, float32) {
	return Min(a, b), Max(a, b)
}

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float32) float32 {
	if min > max {
		min, max = max, min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Clamp01 limits value to the inclusive range [0, 1].
func Clamp01(value float32) float32 { return Clamp(value, 0, 1) }

// Lerp linearly interpolates from a to b by t, clamping t to [0, 1].
func Lerp(a, b, t float32) float32 {
	return LerpUnclamped(a, b, Clamp01(t))
}

// LerpUnclamped linearly interpolates from a to b by t without clamping.
func LerpUnclamped(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Map remaps value from the range [inMin, inMax] into [outMin, outMax].
// Values outside the input range extrapolate linearly.
func Map(value, inMin, inMax, outMin, outMax float32) float32 {
	return (value-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Repeat wraps value around the range [min, max] so the result always
// lies within it.
func Repeat(value, min, max float32) float32 {
	if value >= min && value <= max {
		return value
	}

	x := value - min
	distance := max - min

	if x < 0 {
		return max - distance*Fract(x/distance)
	}
	return distance*Fract(x/distance) + min
}

// Smoothstep computes a smooth Hermite interpolation that eases from 0
// at leftEdge to 1 at rightEdge.
func Smoothstep(value, leftEdge, rightEdge float32) float32 {
	y := Clamp01((value - leftEdge) / (rightEdge - leftEdge))

	return y * y * (3 - 2*y)
}

// Fract returns the fractional part of value, always in [0, 1).
func Fract(value float32) float32 { return value - Floor(value) }

// Deg2Rad converts an angle in degrees to radians.
func Deg2Rad(degrees float32) float32 { return DegToRad * degrees }

// Rad2Deg converts an angle in radians to degrees.
func Rad2Deg(radians float32) float32 { return RadToDeg * radians }

// RoundToDigit rounds value to the given number of digits past the
// decimal point, ties away from zero. Digits outside [-15, 15] are
// clamped rather than rejected.
func RoundToDigit(value float32, digits int) float32 {
	if digits < -15 {
		digits = -15
	}
	if digits > 15 {
		digits = 15
	}

	pow10 := PowInt(10, digits)
	powered := value * pow10
	fraction := Fract(powered)
	truncated := Trunc(powered)

	if fraction == 0 {
		return value
	}
	if value < 0 {
		fraction = 1 - fraction
	}

	if fraction >= 0.5 {
		return (truncated + Sign(value)) / pow10
	}
	return truncated / pow10
}

// PowInt raises value to an integer power by repeated multiplication.
// Negative powers return the reciprocal of the positive power.
func PowInt(value float32, power int) float32 {
	if power == 0 {
		return 1
	}

	result := value
	for i := 1; i < AbsInt(power); i++ {
		result *= value
	}

	if power < 0 {
		return 1 / result
	}
	return result
}

// Pow raises value to an arbitrary power. Integer powers dispatch to
// PowInt; value 2 dispatches to Exp2; everything else computes
// Exp(power * Ln(value)), so negative bases with fractional powers
// yield NaN.
func Pow(value, power float32) float32 {
	if power == 0 {
		return 1
	}
	if power == 1 {
		return value
	}
	if value == 1 {
		return 1
	}
	if value == 2 {
		return Exp2(power)
	}

	if Fract(power) == 0 {
		return PowInt(value, int(Floor(power)))
	}

	return Exp(power * Ln(value))
}
