package geom

import (
	"fmt"

	"github.com/cwbudde/algo-math32/math32"
)

// Vector3 is a 3D vector.
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 creates a 3D vector from its components.
func NewVector3(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Vector3Zero returns the vector (0, 0, 0).
func Vector3Zero() Vector3 { return Vector3{} }

// Vector3One returns the vector (1, 1, 1).
func Vector3One() Vector3 { return Vector3{X: 1, Y: 1, Z: 1} }

// Vector3Left returns the vector (-1, 0, 0).
func Vector3Left() Vector3 { return Vector3{X: -1} }

// Vector3Right returns the vector (1, 0, 0).
func Vector3Right() Vector3 { return Vector3{X: 1} }

// Vector3Up returns the vector (0, 1, 0).
func Vector3Up() Vector3 { return Vector3{Y: 1} }

// Vector3Down returns the vector (0, -1, 0).
func Vector3Down() Vector3 { return Vector3{Y: -1} }

// Vector3Forward returns the vector (0, 0, 1).
func Vector3Forward() Vector3 { return Vector3{Z: 1} }

// Vector3Back returns the vector (0, 0, -1).
func Vector3Back() Vector3 { return Vector3{Z: -1} }

// Vector3FromAngles creates a unit vector from a pair of spherical
// angles (radians).
func Vector3FromAngles(theta, phi float32) Vector3 {
	sinTheta, cosTheta := math32.SinCos(theta)
	sinPhi, cosPhi := math32.SinCos(phi)

	return Vector3{
		X: cosPhi * cosTheta,
		Y: cosPhi * sinTheta,
		Z: sinPhi,
	}
}

// Vector3FromAnglesDeg creates a unit vector from a pair of spherical
// angles (degrees).
func Vector3FromAnglesDeg(theta, phi float32) Vector3 {
	return Vector3FromAngles(math32.Deg2Rad(theta), math32.Deg2Rad(phi))
}

// Magnitude returns the length of the vector. Zero and unit lengths
// short-circuit without a square root.
func (v Vector3) Magnitude() float32 {
	magnitude := v.SquareMagnitude()
	if magnitude == 0 || magnitude == 1 {
		return magnitude
	}
	return math32.Sqrt(magnitude)
}

// SquareMagnitude returns the squared length of the vector.
func (v Vector3) SquareMagnitude() float32 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Add returns the component-wise sum of the two vectors.
func (v Vector3) Add(rhs Vector3) Vector3 {
	return Vector3{X: v.X + rhs.X, Y: v.Y + rhs.Y, Z: v.Z + rhs.Z}
}

// Sub returns the component-wise difference of the two vectors.
func (v Vector3) Sub(rhs Vector3) Vector3 {
	return Vector3{X: v.X - rhs.X, Y: v.Y - rhs.Y, Z: v.Z - rhs.Z}
}

// Neg returns the vector with every component negated.
func (v Vector3) Neg() Vector3 { return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z} }

// Scale returns the vector multiplied by a scalar.
func (v Vector3) Scale(scalar float32) Vector3 {
	return Vector3{X: scalar * v.X, Y: scalar * v.Y, Z: scalar * v.Z}
}

// Div returns the vector divided by a scalar. Dividing by zero yields
// the zero vector.
func (v Vector3) Div(scalar float32) Vector3 {
	if scalar == 0 {
		return Vector3{}
	}
	return Vector3{X: v.X / scalar, Y: v.Y / scalar, Z: v.Z / scalar}
}

// Reciprocal returns the scalar divided by each component. Zero
// components map to zero.
func (v Vector3) Reciprocal(scalar float32) Vector3 {
	result := Vector3{}
	if v.X != 0 {
		result.X = scalar / v.X
	}
	if v.Y != 0 {
		result.Y = scalar / v.Y
	}
	if v.Z != 0 {
		result.Z = scalar / v.Z
	}
	return result
}

// Mult returns the component-wise product of the two vectors.
func (v Vector3) Mult(rhs Vector3) Vector3 {
	return Vector3{X: v.X * rhs.X, Y: v.Y * rhs.Y, Z: v.Z * rhs.Z}
}

// Dot returns the dot product of the two vectors.
func (v Vector3) Dot(rhs Vector3) float32 { return v.X*rhs.X + v.Y*rhs.Y + v.Z*rhs.Z }

// Cross returns the cross product of the two vectors.
func (v Vector3) Cross(rhs Vector3) Vector3 {
	return Vector3{
		X: v.Y*rhs.Z - v.Z*rhs.Y,
		Y: v.Z*rhs.X - v.X*rhs.Z,
		Z: v.X*rhs.Y - v.Y*rhs.X,
	}
}

// Distance returns the distance between the two vectors.
func (v Vector3) Distance(rhs Vector3) float32 { return rhs.Sub(v).Magnitude() }

// AngleBetween returns the unsigned angle between the two vectors in
// radians. Vanishingly small vectors yield zero.
func (v Vector3) AngleBetween(rhs Vector3) float32 {
	value := math32.Sqrt(v.SquareMagnitude() * rhs.SquareMagnitude())
	if value < 1e-10 {
		return 0
	}
	return math32.Acos(math32.Clamp(v.Dot(rhs)/value, -1, 1))
}

// AngleBetweenDeg returns the unsigned angle between the two vectors in
// degrees.
func (v Vector3) AngleBetweenDeg(rhs Vector3) float32 {
	return math32.Rad2Deg(v.AngleBetween(rhs))
}

// SignedAngleBetween returns the angle between the two vectors in
// radians, signed by the winding around the given axis.
func (v Vector3) SignedAngleBetween(rhs, axis Vector3) float32 {
	angle := v.AngleBetween(rhs)
	cross := v.Cross(rhs)
	sign := math32.Sign(axis.Dot(cross))
	return sign * angle
}

// SignedAngleBetweenDeg returns the signed angle between the two
// vectors in degrees.
func (v Vector3) SignedAngleBetweenDeg(rhs, axis Vector3) float32 {
	return math32.Rad2Deg(v.SignedAngleBetween(rhs, axis))
}

// Lerp linearly interpolates towards rhs by t, clamping t to [0, 1].
func (v Vector3) Lerp(rhs Vector3, t float32) Vector3 {
	return v.LerpUnclamped(rhs, math32.Clamp01(t))
}

// LerpUnclamped linearly interpolates towards rhs by t without clamping.
func (v Vector3) LerpUnclamped(rhs Vector3, t float32) Vector3 {
	return Vector3{
		X: math32.LerpUnclamped(v.X, rhs.X, t),
		Y: math32.LerpUnclamped(v.Y, rhs.Y, t),
		Z: math32.LerpUnclamped(v.Z, rhs.Z, t),
	}
}

// MoveTowards moves the vector towards target by at most delta, never
// moving past the target.
func (v Vector3) MoveTowards(target Vector3, delta float32) Vector3 {
	dir := target.Sub(v)
	sqMagnitude := dir.SquareMagnitude()
	if sqMagnitude == 0 || (delta >= 0 && sqMagnitude <= delta*delta) {
		return target
	}

	diff := delta / math32.Sqrt(sqMagnitude)

	return dir.Scale(diff).Add(v)
}

// Normalize returns the unit vector with the same direction. The zero
// vector normalizes to itself.
func (v Vector3) Normalize() Vector3 { return v.Div(v.Magnitude()) }

// Project returns this vector projected onto rhs.
func (v Vector3) Project(rhs Vector3) Vector3 {
	top := v.Dot(rhs)
	bottom := rhs.SquareMagnitude()
	return rhs.Scale(top / bottom)
}

// Reject returns the component of this vector perpendicular to rhs.
func (v Vector3) Reject(rhs Vector3) Vector3 {
	return v.Sub(v.Project(rhs))
}

// Reflect reflects this vector off the given normal.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	dot := -2 * v.Dot(normal)
	return normal.Scale(dot).Add(v)
}

// RotateTowards rotates the vector towards target, turning by at most
// radiansDelta and changing length by at most magnitudeDelta.
func (v Vector3) RotateTowards(target Vector3, radiansDelta, magnitudeDelta float32) Vector3 {
	axis := v.Cross(target)
	absRadians := math32.Abs(radiansDelta)
	angle := math32.Clamp(v.SignedAngleBetween(target, axis), -absRadians, absRadians)

	if angle == 0 {
		return target
	}

	rotated := QuaternionFromAxisAngle(axis, angle).RotateVector3(v)
	magnitude := v.Magnitude()
	targetMagnitude := target.Magnitude()

	var towards float32
	switch {
	case magnitude < targetMagnitude:
		towards = math32.Min(magnitude+magnitudeDelta, targetMagnitude)
	case magnitude > targetMagnitude:
		towards = math32.Max(magnitude-magnitudeDelta, targetMagnitude)
	default:
		return rotated
	}

	return rotated.Normalize().Scale(towards)
}

// Slerp spherically interpolates towards rhs by t, clamping t to
// [0, 1]. The result's length interpolates linearly between the two
// input lengths.
func (v Vector3) Slerp(rhs Vector3, t float32) Vector3 {
	return v.SlerpUnclamped(rhs, math32.Clamp01(t))
}

// SlerpUnclamped spherically interpolates towards rhs by t without
// clamping. Near-parallel directions fall back to normalized linear
// interpolation.
func (v Vector3) SlerpUnclamped(rhs Vector3, t float32) Vector3 {
	size := math32.LerpUnclamped(v.Magnitude(), rhs.Magnitude(), t)
	unitSelf := v.Normalize()
	unitRhs := rhs.Normalize()
	dot := unitSelf.Dot(unitRhs)

	if dot < 0 {
		unitRhs = unitRhs.Neg()
		dot = -dot
	}
	if dot > 0.9995 {
		return unitSelf.Add(unitRhs.Sub(unitSelf).Scale(t)).Normalize().Scale(size)
	}

	angle := t * math32.Acos(dot)
	ortho := unitRhs.Sub(unitSelf.Scale(dot)).Normalize()
	sin, cos := math32.SinCos(angle)

	return unitSelf.Scale(size * cos).Add(ortho.Scale(size * sin))
}

// SmoothDamp eases the vector towards target over time using a damped
// spring model, returning the new position and velocity. smoothTime is
// the approximate time to reach the target, maxSpeed caps the step, and
// delta is the elapsed time since the previous call.
func (v Vector3) SmoothDamp(target, velocity Vector3, smoothTime, maxSpeed, delta float32) (Vector3, Vector3) {
	smoothTime = math32.Max(0.0001, smoothTime)
	invSmoothTime := 2 / smoothTime
	invSmoothDelta := invSmoothTime * delta
	cubic := 1 / (1 +
		invSmoothDelta +
		0.47999998927116394*invSmoothDelta*invSmoothDelta +
		0.23499999940395355*invSmoothDelta*invSmoothDelta*invSmoothDelta)

	dir := v.Sub(target)
	smoothSpeed := maxSpeed * smoothTime
	sqMagnitude := dir.SquareMagnitude()

	if sqMagnitude > smoothSpeed*smoothSpeed {
		dir = dir.Scale(smoothSpeed / math32.Sqrt(sqMagnitude))
	}

	clamped := v.Sub(dir)
	smoothVelocity := velocity.Add(dir.Scale(invSmoothTime)).Scale(delta)
	newVelocity := velocity.Sub(smoothVelocity.Scale(invSmoothTime)).Scale(cubic)
	result := clamped.Add(dir.Add(smoothVelocity).Scale(cubic))

	// recompute the velocity when the step overshoots the target
	if target.Sub(v).Dot(result.Sub(target)) > 0 {
		newVelocity = result.Sub(target).Div(delta)
	}

	return result, newVelocity
}

// Approx reports whether both vectors are equal within the default
// component tolerance.
func (v Vector3) Approx(rhs Vector3) bool {
	return math32.Approx(v.X, rhs.X) && math32.Approx(v.Y, rhs.Y) && math32.Approx(v.Z, rhs.Z)
}

// ApproxEpsilon reports whether both vectors are equal within the given
// component tolerance.
func (v Vector3) ApproxEpsilon(rhs Vector3, epsilon float32) bool {
	return math32.ApproxEpsilon(v.X, rhs.X, epsilon) &&
		math32.ApproxEpsilon(v.Y, rhs.Y, epsilon) &&
		math32.ApproxEpsilon(v.Z, rhs.Z, epsilon)
}

// ToVector2 narrows the vector into 2D, dropping the z component.
func (v Vector3) ToVector2() Vector2 { return Vector2{X: v.X, Y: v.Y} }

func (v Vector3) String() string { return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z) }
