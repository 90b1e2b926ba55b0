package math32

// Sin returns the sine of angle (radians).
//
// When both the sine and cosine of the same angle are needed, call
// SinCos instead of Sin and Cos separately.
func Sin(angle float32) float32 {
	s, _ := SinCos(angle)
	return s
}

// Cos returns the cosine of angle (radians).
//
// When both the sine and cosine of the same angle are needed, call
// SinCos instead of Sin and Cos separately.
func Cos(angle float32) float32 {
	_, c := SinCos(angle)
	return c
}

// Tan returns the tangent of angle (radians).
func Tan(angle float32) float32 {
	s, c := SinCos(angle)
	return s / c
}

// Cot returns the cotangent of angle (radians).
func Cot(angle float32) float32 { return 1 / Tan(angle) }

// Sec returns the secant of angle (radians).
func Sec(angle float32) float32 { return 1 / Cos(angle) }

// Csc returns the cosecant of angle (radians).
func Csc(angle float32) float32 { return 1 / Sin(angle) }

// SinDeg returns the sine of angle (degrees).
func SinDeg(angle float32) float32 { return Sin(DegToRad * angle) }

// CosDeg returns the cosine of angle (degrees).
func CosDeg(angle float32) float32 { return Cos(DegToRad * angle) }

// TanDeg returns the tangent of angle (degrees).
func TanDeg(angle float32) float32 { return Tan(DegToRad * angle) }

// CotDeg returns the cotangent of angle (degrees).
func CotDeg(angle float32) float32 { return Cot(DegToRad * angle) }

// SecDeg returns the secant of angle (degrees).
func SecDeg(angle float32) float32 { return Sec(DegToRad * angle) }

// CscDeg returns the cosecant of angle (degrees).
func CscDeg(angle float32) float32 { return Csc(DegToRad * angle) }

// SinCosDeg returns both the sine and cosine of angle (degrees).
func SinCosDeg(angle float32) (float32, float32) { return SinCos(DegToRad * angle) }

// AsinDeg returns the arc sine of value in degrees; NaN outside [-1, 1].
func AsinDeg(value float32) float32 { return RadToDeg * Asin(value) }

// AcosDeg returns the arc cosine of value in degrees; NaN outside [-1, 1].
func AcosDeg(value float32) float32 { return RadToDeg * Acos(value) }

// AtanDeg returns the arc tangent of value in degrees.
func AtanDeg(value float32) float32 { return RadToDeg * Atan(value) }

// Atan2Deg returns the full-circle arc tangent of y/x in degrees.
func Atan2Deg(y, x float32) float32 { return RadToDeg * Atan2(y, x) }
