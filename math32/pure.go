//go:build puremath

package math32

// Self-contained realization for freestanding targets: every function
// below is computed from first principles using only add, multiply,
// divide, and compare on float32. Nothing in this file touches the
// platform math package; even the IEEE sentinels are produced
// arithmetically.

var (
	zero32 float32
	nan32          = zero32 / zero32
	posInf float32 = 1 / zero32
	negInf float32 = -1 / zero32
)

func isNaN(value float32) bool { return value != value }

func isInf(value float32) bool { return value == posInf || value == negInf }

// cordicRounds is the fixed number of micro-rotations applied by
// SinCos. 28 rounds drive the residual angle below float32 precision.
const cordicRounds = 28

// cordicGain is the reciprocal of the product of the per-round scaling
// factors prod(sqrt(1 + 2^-2i)); starting the iteration at this value
// leaves the final vector with unit length.
const cordicGain float32 = 0.60725293500888

// cordicAtan holds atan(2^-i) for each round.
var cordicAtan = [cordicRounds]float32{
	0.7853982,
	0.4636476,
	0.24497867,
	0.124354996,
	0.06241881,
	0.031239834,
	0.015623729,
	0.007812341,
	0.0039062302,
	0.0019531226,
	0.0009765622,
	0.00048828122,
	0.00024414063,
	0.00012207031,
	0.000061035156,
	0.000030517578,
	0.00001525878906,
	0.00000762939453,
	0.00000381469727,
	0.00000190734863,
	0.00000095367432,
	0.00000047683716,
	0.00000023841858,
	0.00000011920929,
	0.00000005960464,
	0.00000002980232,
	0.00000001490116,
	0.00000000745058,
}

// SinCos returns both the sine and cosine of angle (radians), computed
// by a fixed 28-round CORDIC rotation. Non-finite angles yield a NaN
// pair. Angles beyond a full turn are reduced modulo 2π first, then
// angles outside [-π/2, π/2] are reflected through π, which flips both
// results.
func SinCos(angle float32) (float32, float32) {
	if isNaN(angle) || isInf(angle) {
		return nan32, nan32
	}

	if angle < -TwoPi || angle > TwoPi {
		angle -= Trunc(angle/TwoPi) * TwoPi
		if angle < -TwoPi || angle > TwoPi {
			// the spacing between adjacent float32 values at this
			// magnitude exceeds a full turn; no phase survives the
			// representation
			angle = 0
		}
	}

	flip := float32(1)
	for angle < -PiOver2 || angle > PiOver2 {
		if angle < 0 {
			angle += Pi
		} else {
			angle -= Pi
		}
		flip = -flip
	}

	cos := cordicGain
	sin := float32(0)
	z := angle
	pow2 := float32(1)

	for i := 0; i < cordicRounds; i++ {
		di := float32(1)
		if z <= 0 {
			di = -1
		}

		newCos := cos - sin*di*pow2
		newSin := sin + cos*di*pow2
		cos, sin = newCos, newSin
		z -= di * cordicAtan[i]
		pow2 *= 0.5
	}

	return flip * sin, flip * cos
}

// Asin returns the arc sine of value in radians; NaN outside [-1, 1].
// Uses a fixed-degree minimax polynomial in |value| with a sign fold.
func Asin(value float32) float32 {
	if value < -1 || value > 1 {
		return nan32
	}

	negate := float32(0)
	if value < 0 {
		negate = 1
	}
	value = Abs(value)

	angle := float32(-0.0187293)
	angle *= value
	angle += 0.0742610
	angle *= value
	angle -= 0.2121144
	angle *= value
	angle += PiOver2
	angle = Pi*0.5 - Sqrt(1-value)*angle

	return angle - 2*negate*angle
}

// Acos returns the arc cosine of value in radians; NaN outside [-1, 1].
// Same minimax polynomial as Asin with a quadrant correction.
func Acos(value float32) float32 {
	if value < -1 || value > 1 {
		return nan32
	}

	negate := float32(0)
	if value <= 0 {
		negate = 1
	}
	value = Abs(value)

	angle := float32(-0.0187293)
	angle *= value
	angle += 0.0742610
	angle *= value
	angle -= 0.2121144
	angle *= value
	angle += PiOver2
	angle *= Sqrt(1 - value)
	angle -= 2 * negate * angle

	return negate*Pi + angle
}

// Atan returns the arc tangent of value in radians.
func Atan(value float32) float32 { return Atan2(value, 1) }

// Atan2 returns the full-circle arc tangent of y/x in radians, via an
// odd minimax polynomial on the ratio of the smaller to the larger
// absolute argument, corrected by quadrant. Atan2(0, 0) is defined as 0.
func Atan2(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}

	a := Abs(x)
	b := Abs(y)
	c := Max(a, b)
	b = Min(a, b)
	a = 1 / c
	a = b * a

	d := a * a
	c = -0.013480470
	c = c*d + 0.057477314
	c = c*d - 0.121239071
	c = c*d + 0.195635925
	c = c*d - 0.332994597
	c = c*d + 0.999995630
	a *= c

	if Abs(y) > Abs(x) {
		a = PiOver2 - a
	}
	if x < 0 {
		a = Pi - a
	}
	if y < 0 {
		a = -a
	}

	return a
}

// Exp returns e**value from a 100-term Taylor series around zero.
// Negative inputs are computed as the reciprocal of Exp(-value) to
// keep the series well-conditioned.
func Exp(value float32) float32 {
	if value < 0 {
		return 1 / Exp(-value)
	}

	result := float32(1)
	term := float32(1)

	for n := 1; n <= 100; n++ {
		term *= value / float32(n)
		result += term
	}

	return result
}

// Exp2 returns 2**value.
func Exp2(value float32) float32 { return Exp(value * Ln2) }

// Ln returns the natural logarithm of value. Ln(0) is -Inf, negative
// inputs yield NaN, Ln(+Inf) is +Inf. The input is range-reduced by
// repeated division by 10 and 2 into [1, 2), then a bounded alternating
// series in (x-1) is summed and the reduction added back in Ln2/Ln10
// multiples.
func Ln(value float32) float32 {
	switch {
	case isNaN(value):
		return nan32
	case value == 0:
		return negInf
	case value < 0:
		return nan32
	case value < 1:
		return -Ln(1 / value)
	case isInf(value):
		return posInf
	case value == 1:
		return 0
	}

	x := value
	ln10Count := 0
	ln2Count := 0

	for x > 10 {
		x /= 10
		ln10Count++
	}
	for x >= 2 {
		x /= 2
		ln2Count++
	}

	reduced := float32(ln2Count)*Ln2 + float32(ln10Count)*Ln10
	if x == 1 {
		return reduced
	}

	term := x - 1
	power := term
	series := power

	for i := 2; i < 17; i++ {
		power *= term
		if i%2 == 0 {
			series -= power / float32(i)
		} else {
			series += power / float32(i)
		}
	}

	return reduced + series
}

// Ln1p returns the natural logarithm of value plus one.
func Ln1p(value float32) float32 { return Ln(value + 1) }

// Log returns the logarithm of value in the given base.
func Log(value, base float32) float32 { return Ln(value) / Ln(base) }

// Log2 returns the base-2 logarithm of value.
func Log2(value float32) float32 { return Ln(value) / Ln2 }

// Log10 returns the base-10 logarithm of value.
func Log10(value float32) float32 { return Ln(value) / Ln10 }

// Sqrt returns the square root of value; negative inputs yield NaN.
// Newton iteration on the cubically convergent update
// x' = (x³ + 3vx)/(3x² + v), seeded with v, until the update delta
// drops below 1e-9 or 50 iterations elapse.
func Sqrt(value float32) float32 {
	if value < 0 {
		return nan32
	}
	if value == 0 {
		return 0
	}
	if value == 1 {
		return 1
	}
	if value == posInf {
		return posInf
	}

	x := value
	for i := 0; i < 50; i++ {
		next := (x*x*x + 3*value*x) / (3*x*x + value)
		if Abs(next-x) <= 1e-9 {
			return next
		}
		x = next
	}

	return x
}

// Sinh returns the hyperbolic sine of value.
func Sinh(value float32) float32 {
	exp := Exp(value)
	if isInf(exp) || isNaN(exp) {
		if value > 0 {
			return posInf
		}
		return negInf
	}

	return (exp - 1/exp) * 0.5
}

// Cosh returns the hyperbolic cosine of value.
func Cosh(value float32) float32 {
	exp := Exp(value)
	if isInf(exp) || isNaN(exp) {
		return posInf
	}

	return (exp + 1/exp) * 0.5
}

// Tanh returns the hyperbolic tangent of value.
func Tanh(value float32) float32 {
	exp := Exp(2 * value)
	if isInf(exp) || isNaN(exp) {
		if value > 0 {
			return 1
		}
		return -1
	}

	return (exp - 1) / (exp + 1)
}

// Asinh returns the inverse hyperbolic sine of value.
func Asinh(value float32) float32 {
	return Ln(value + Sqrt(value*value+1))
}

// Acosh returns the inverse hyperbolic cosine of value; NaN below 1.
func Acosh(value float32) float32 {
	if value < 1 {
		return nan32
	}
	return Ln(value + Sqrt(value*value-1))
}

// Atanh returns the inverse hyperbolic tangent of value; ±1 yields ±Inf.
func Atanh(value float32) float32 {
	if value >= 1 {
		return posInf
	}
	if value <= -1 {
		return negInf
	}
	return 0.5 * Ln((1+value)/(1-value))
}

// Trunc returns value with its fractional part discarded,
// cast-to-integer-and-back semantics. Inputs beyond the int32 range
// saturate to the nearest bound and NaN truncates to zero; the bare Go
// conversion leaves both cases implementation-defined.
func Trunc(value float32) float32 {
	switch {
	case isNaN(value):
		return 0
	case value >= 2147483648:
		return 2147483647
	case value < -2147483648:
		return -2147483648
	}
	return float32(int32(value))
}

// Floor returns the largest integer value less than or equal to value.
func Floor(value float32) float32 {
	truncated := Trunc(value)
	if truncated == value {
		return truncated
	}
	if value < 0 {
		return truncated - 1
	}
	return truncated
}

// Ceil returns the smallest integer value greater than or equal to value.
func Ceil(value float32) float32 {
	truncated := Trunc(value)
	if truncated == value {
		return truncated
	}
	if value < 0 {
		return truncated
	}
	return truncated + 1
}

// Round returns value rounded to the nearest integer, ties away from zero.
func Round(value float32) float32 {
	fraction := Fract(value)
	truncated := Trunc(value)

	if value < 0 && fraction > 0 {
		fraction = 1 - fraction
	}

	if fraction >= 0.5 {
		return truncated + Sign(value)
	}
	return truncated
}
