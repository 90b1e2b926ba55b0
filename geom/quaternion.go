package geom

import (
	"fmt"

	"github.com/cwbudde/algo-math32/math32"
)

// Quaternion is a rotation expressed as a + bi + cj + dk, where A is
// the real component.
type Quaternion struct {
	A, B, C, D float32
}

// NewQuaternion creates a quaternion from its components.
func NewQuaternion(a, b, c, d float32) Quaternion {
	return Quaternion{A: a, B: b, C: c, D: d}
}

// QuaternionIdentity returns the identity quaternion, representing no
// rotation.
func QuaternionIdentity() Quaternion { return Quaternion{A: 1} }

// QuaternionFromAxisAngle creates a rotation of the given angle
// (radians) around the given axis. The axis need not be normalized.
func QuaternionFromAxisAngle(axis Vector3, angle float32) Quaternion {
	sin, cos := math32.SinCos(0.5 * angle)
	norm := axis.Normalize()

	return Quaternion{
		A: cos,
		B: sin * norm.X,
		C: sin * norm.Y,
		D: sin * norm.Z,
	}
}

// QuaternionFromAxisAngleDeg creates a rotation of the given angle
// (degrees) around the given axis.
func QuaternionFromAxisAngleDeg(axis Vector3, angle float32) Quaternion {
	return QuaternionFromAxisAngle(axis, math32.Deg2Rad(angle))
}

// QuaternionFromEuler creates a rotation from per-axis euler angles in
// radians.
func QuaternionFromEuler(eulerAngles Vector3) Quaternion {
	sinYaw, cosYaw := math32.SinCos(-0.5 * eulerAngles.X)
	sinPitch, cosPitch := math32.SinCos(-0.5 * eulerAngles.Y)
	sinRoll, cosRoll := math32.SinCos(-0.5 * eulerAngles.Z)

	return Quaternion{
		A: (cosYaw * cosPitch * cosRoll) - (sinYaw * sinPitch * sinRoll),
		B: (cosYaw * sinPitch * sinRoll) - (sinYaw * cosPitch * cosRoll),
		C: -(cosYaw * sinPitch * cosRoll) - (sinYaw * cosPitch * sinRoll),
		D: -(sinYaw * sinPitch * cosRoll) - (cosYaw * cosPitch * sinRoll),
	}
}

// QuaternionFromEulerDeg creates a rotation from per-axis euler angles
// in degrees.
func QuaternionFromEulerDeg(eulerAngles Vector3) Quaternion {
	return QuaternionFromEuler(Vector3{
		X: math32.Deg2Rad(eulerAngles.X),
		Y: math32.Deg2Rad(eulerAngles.Y),
		Z: math32.Deg2Rad(eulerAngles.Z),
	})
}

// Euler extracts per-axis euler angles in radians. Orientations within
// the gimbal lock region collapse to a degenerate triple with a zero x
// angle and a ±π/2 y angle.
func (q Quaternion) Euler() Vector3 {
	const singularityTest = 0.499999995

	sqA := q.A * q.A
	sqB := q.B * q.B
	sqC := q.C * q.C
	sqD := q.D * q.D
	unit := sqA + sqB + sqC + sqD
	test := (q.B * q.D) + (q.A * q.C)

	if test > singularityTest*unit {
		return Vector3{
			Y: math32.PiOver2,
			Z: 2 * math32.Atan2(q.B, q.A),
		}
	}
	if test < -singularityTest*unit {
		return Vector3{
			Y: -math32.PiOver2,
			Z: -2 * math32.Atan2(q.B, q.A),
		}
	}

	return Vector3{
		X: math32.Atan2(2*((q.A*q.B)-(q.C*q.D)), sqA-sqB-sqC+sqD),
		Y: math32.Asin(2 * test / unit),
		Z: math32.Atan2(2*((q.A*q.D)-(q.B*q.C)), sqA+sqB-sqC-sqD),
	}
}

// EulerDeg extracts per-axis euler angles in degrees.
func (q Quaternion) EulerDeg() Vector3 {
	euler := q.Euler()
	return Vector3{
		X: math32.Rad2Deg(euler.X),
		Y: math32.Rad2Deg(euler.Y),
		Z: math32.Rad2Deg(euler.Z),
	}
}

// Magnitude returns the length of the quaternion. Zero and unit
// lengths short-circuit without a square root.
func (q Quaternion) Magnitude() float32 {
	magnitude := q.SquareMagnitude()
	if magnitude == 0 || magnitude == 1 {
		return magnitude
	}
	return math32.Sqrt(magnitude)
}

// SquareMagnitude returns the squared length of the quaternion.
func (q Quaternion) SquareMagnitude() float32 {
	return q.A*q.A + q.B*q.B + q.C*q.C + q.D*q.D
}

// Add returns the component-wise sum of the two quaternions.
func (q Quaternion) Add(rhs Quaternion) Quaternion {
	return Quaternion{A: q.A + rhs.A, B: q.B + rhs.B, C: q.C + rhs.C, D: q.D + rhs.D}
}

// Sub returns the component-wise difference of the two quaternions.
func (q Quaternion) Sub(rhs Quaternion) Quaternion {
	return Quaternion{A: q.A - rhs.A, B: q.B - rhs.B, C: q.C - rhs.C, D: q.D - rhs.D}
}

// Neg returns the quaternion with every component negated.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{A: -q.A, B: -q.B, C: -q.C, D: -q.D}
}

// Scale returns the quaternion multiplied by a scalar.
func (q Quaternion) Scale(scalar float32) Quaternion {
	return Quaternion{A: scalar * q.A, B: scalar * q.B, C: scalar * q.C, D: scalar * q.D}
}

// DivScalar returns the quaternion divided by a scalar. Dividing by
// zero yields the zero quaternion.
func (q Quaternion) DivScalar(scalar float32) Quaternion {
	if scalar == 0 {
		return Quaternion{}
	}
	return Quaternion{A: q.A / scalar, B: q.B / scalar, C: q.C / scalar, D: q.D / scalar}
}

// Conjugate returns the quaternion with its imaginary components
// negated.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{A: q.A, B: -q.B, C: -q.C, D: -q.D}
}

// Dot returns the dot product of the two quaternions.
func (q Quaternion) Dot(rhs Quaternion) float32 {
	return q.A*rhs.A + q.B*rhs.B + q.C*rhs.C + q.D*rhs.D
}

// Mul returns the Hamilton product of the two quaternions. The product
// is not commutative.
func (q Quaternion) Mul(rhs Quaternion) Quaternion {
	return Quaternion{
		A: q.A*rhs.A - q.B*rhs.B - q.C*rhs.C - q.D*rhs.D,
		B: q.A*rhs.B + q.B*rhs.A + q.C*rhs.D - q.D*rhs.C,
		C: q.A*rhs.C - q.B*rhs.D + q.C*rhs.A + q.D*rhs.B,
		D: q.A*rhs.D + q.B*rhs.C - q.C*rhs.B + q.D*rhs.A,
	}
}

// Div divides this quaternion by rhs.
func (q Quaternion) Div(rhs Quaternion) Quaternion {
	divided := q.Mul(rhs.Conjugate())
	return divided.DivScalar(divided.SquareMagnitude())
}

// Invert returns the multiplicative inverse of the quaternion. The
// zero quaternion inverts to itself.
func (q Quaternion) Invert() Quaternion {
	magnitude := q.SquareMagnitude()
	if magnitude == 0 {
		return q
	}
	return q.Conjugate().DivScalar(magnitude)
}

// Normalize returns the unit quaternion with the same orientation. The
// zero quaternion normalizes to itself.
func (q Quaternion) Normalize() Quaternion { return q.DivScalar(q.Magnitude()) }

// RotateVector3 rotates the given vector by this quaternion.
func (q Quaternion) RotateVector3(rhs Vector3) Vector3 {
	vector := Vector3{X: q.B, Y: q.C, Z: q.D}
	return rhs.Add(vector.Cross(vector.Cross(rhs).Add(rhs.Scale(q.A))).Scale(2))
}

// RotateVector2 rotates the given vector by this quaternion in the xy
// plane, dropping the resulting z component.
func (q Quaternion) RotateVector2(rhs Vector2) Vector2 {
	return q.RotateVector3(rhs.ToVector3()).ToVector2()
}

// Slerp spherically interpolates towards rhs by t, clamping t to
// [0, 1].
func (q Quaternion) Slerp(rhs Quaternion, t float32) Quaternion {
	return q.SlerpUnclamped(rhs, math32.Clamp01(t))
}

// SlerpUnclamped spherically interpolates towards rhs by t without
// clamping. Near-identical orientations fall back to normalized linear
// interpolation, and opposing hemispheres are flipped to take the
// shorter arc.
func (q Quaternion) SlerpUnclamped(rhs Quaternion, t float32) Quaternion {
	unitSelf := q.Normalize()
	unitRhs := rhs.Normalize()
	dot := unitSelf.Dot(unitRhs)

	if dot < 0 {
		unitRhs = unitRhs.Neg()
		dot = -dot
	}
	if dot > 0.9995 {
		return unitSelf.Add(unitRhs.Sub(unitSelf).Scale(t)).Normalize()
	}

	angle := t * math32.Acos(dot)
	ortho := unitRhs.Sub(unitSelf.Scale(dot)).Normalize()
	sin, cos := math32.SinCos(angle)

	return unitSelf.Scale(cos).Add(ortho.Scale(sin))
}

// Approx reports whether both quaternions are equal within the default
// component tolerance.
func (q Quaternion) Approx(rhs Quaternion) bool {
	return math32.Approx(q.A, rhs.A) && math32.Approx(q.B, rhs.B) &&
		math32.Approx(q.C, rhs.C) && math32.Approx(q.D, rhs.D)
}

// ApproxEpsilon reports whether both quaternions are equal within the
// given component tolerance.
func (q Quaternion) ApproxEpsilon(rhs Quaternion, epsilon float32) bool {
	return math32.ApproxEpsilon(q.A, rhs.A, epsilon) &&
		math32.ApproxEpsilon(q.B, rhs.B, epsilon) &&
		math32.ApproxEpsilon(q.C, rhs.C, epsilon) &&
		math32.ApproxEpsilon(q.D, rhs.D, epsilon)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%v, %vi, %vj, %vk)", q.A, q.B, q.C, q.D)
}
