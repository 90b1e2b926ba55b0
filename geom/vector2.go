package geom

import (
	"fmt"

	"github.com/cwbudde/algo-math32/math32"
)

// Vector2 is a 2D vector.
type Vector2 struct {
	X, Y float32
}

// NewVector2 creates a 2D vector from its components.
func NewVector2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// Vector2Zero returns the vector (0, 0).
func Vector2Zero() Vector2 { return Vector2{} }

// Vector2One returns the vector (1, 1).
func Vector2One() Vector2 { return Vector2{X: 1, Y: 1} }

// Vector2Left returns the vector (-1, 0).
func Vector2Left() Vector2 { return Vector2{X: -1} }

// Vector2Right returns the vector (1, 0).
func Vector2Right() Vector2 { return Vector2{X: 1} }

// Vector2Up returns the vector (0, 1).
func Vector2Up() Vector2 { return Vector2{Y: 1} }

// Vector2Down returns the vector (0, -1).
func Vector2Down() Vector2 { return Vector2{Y: -1} }

// Vector2FromHeading creates a unit vector pointing along the given
// heading angle (radians).
func Vector2FromHeading(angle float32) Vector2 {
	s, c := math32.SinCos(angle)
	return Vector2{X: c, Y: s}
}

// Vector2FromHeadingDeg creates a unit vector pointing along the given
// heading angle (degrees).
func Vector2FromHeadingDeg(angle float32) Vector2 {
	return Vector2FromHeading(math32.Deg2Rad(angle))
}

// Heading returns the angle of the vector in radians.
func (v Vector2) Heading() float32 { return math32.Atan2(v.Y, v.X) }

// HeadingDeg returns the angle of the vector in degrees.
func (v Vector2) HeadingDeg() float32 { return math32.Rad2Deg(v.Heading()) }

// SetHeading replaces the vector with a unit vector pointing along the
// given angle in radians.
func (v *Vector2) SetHeading(angle float32) { *v = Vector2FromHeading(angle) }

// SetHeadingDeg replaces the vector with a unit vector pointing along
// the given angle in degrees.
func (v *Vector2) SetHeadingDeg(angle float32) { *v = Vector2FromHeadingDeg(angle) }

// Magnitude returns the length of the vector. Zero and unit lengths
// short-circuit without a square root.
func (v Vector2) Magnitude() float32 {
	magnitude := v.SquareMagnitude()
	if magnitude == 0 || magnitude == 1 {
		return magnitude
	}
	return math32.Sqrt(magnitude)
}

// SquareMagnitude returns the squared length of the vector.
func (v Vector2) SquareMagnitude() float32 { return v.X*v.X + v.Y*v.Y }

// Add returns the component-wise sum of the two vectors.
func (v Vector2) Add(rhs Vector2) Vector2 { return Vector2{X: v.X + rhs.X, Y: v.Y + rhs.Y} }

// Sub returns the component-wise difference of the two vectors.
func (v Vector2) Sub(rhs Vector2) Vector2 { return Vector2{X: v.X - rhs.X, Y: v.Y - rhs.Y} }

// Neg returns the vector with every component negated.
func (v Vector2) Neg() Vector2 { return Vector2{X: -v.X, Y: -v.Y} }

// Scale returns the vector multiplied by a scalar.
func (v Vector2) Scale(scalar float32) Vector2 {
	return Vector2{X: scalar * v.X, Y: scalar * v.Y}
}

// Div returns the vector divided by a scalar. Dividing by zero yields
// the zero vector.
func (v Vector2) Div(scalar float32) Vector2 {
	if scalar == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / scalar, Y: v.Y / scalar}
}

// Reciprocal returns the scalar divided by each component. Zero
// components map to zero.
func (v Vector2) Reciprocal(scalar float32) Vector2 {
	result := Vector2{}
	if v.X != 0 {
		result.X = scalar / v.X
	}
	if v.Y != 0 {
		result.Y = scalar / v.Y
	}
	return result
}

// Mult returns the component-wise product of the two vectors.
func (v Vector2) Mult(rhs Vector2) Vector2 { return Vector2{X: v.X * rhs.X, Y: v.Y * rhs.Y} }

// Dot returns the dot product of the two vectors.
func (v Vector2) Dot(rhs Vector2) float32 { return v.X*rhs.X + v.Y*rhs.Y }

// Distance returns the distance between the two vectors.
func (v Vector2) Distance(rhs Vector2) float32 { return rhs.Sub(v).Magnitude() }

// AngleBetween returns the unsigned angle between the two vectors in
// radians. Vanishingly small vectors yield zero.
func (v Vector2) AngleBetween(rhs Vector2) float32 {
	value := math32.Sqrt(v.SquareMagnitude() * rhs.SquareMagnitude())
	if value < 1e-10 {
		return 0
	}
	return math32.Acos(math32.Clamp(v.Dot(rhs)/value, -1, 1))
}

// AngleBetweenDeg returns the unsigned angle between the two vectors in
// degrees.
func (v Vector2) AngleBetweenDeg(rhs Vector2) float32 {
	return math32.Rad2Deg(v.AngleBetween(rhs))
}

// SignedAngleBetween returns the angle between the two vectors in
// radians, negative when rhs lies clockwise of v.
func (v Vector2) SignedAngleBetween(rhs Vector2) float32 {
	angle := v.AngleBetween(rhs)
	sign := math32.Sign(v.Dot(rhs.Perpendicular()))
	return sign * angle
}

// SignedAngleBetweenDeg returns the signed angle between the two
// vectors in degrees.
func (v Vector2) SignedAngleBetweenDeg(rhs Vector2) float32 {
	return math32.Rad2Deg(v.SignedAngleBetween(rhs))
}

// Lerp linearly interpolates towards rhs by t, clamping t to [0, 1].
func (v Vector2) Lerp(rhs Vector2, t float32) Vector2 {
	return v.LerpUnclamped(rhs, math32.Clamp01(t))
}

// LerpUnclamped linearly interpolates towards rhs by t without clamping.
func (v Vector2) LerpUnclamped(rhs Vector2, t float32) Vector2 {
	return Vector2{
		X: math32.LerpUnclamped(v.X, rhs.X, t),
		Y: math32.LerpUnclamped(v.Y, rhs.Y, t),
	}
}

// MoveTowards moves the vector towards target by at most delta, never
// moving past the target.
func (v Vector2) MoveTowards(target Vector2, delta float32) Vector2 {
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
func (v Vector2) Normalize() Vector2 { return v.Div(v.Magnitude()) }

// Perpendicular returns a vector rotated a quarter turn clockwise.
func (v Vector2) Perpendicular() Vector2 { return Vector2{X: v.Y, Y: -v.X} }

// Project returns this vector projected onto rhs.
func (v Vector2) Project(rhs Vector2) Vector2 {
	top := v.Dot(rhs)
	bottom := rhs.SquareMagnitude()
	return rhs.Scale(top / bottom)
}

// Reject returns the component of this vector perpendicular to rhs.
func (v Vector2) Reject(rhs Vector2) Vector2 {
	return v.Sub(v.Project(rhs))
}

// Reflect reflects this vector off the given normal.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	dot := -2 * v.Dot(normal)
	return normal.Scale(dot).Add(v)
}

// Approx reports whether both vectors are equal within the default
// component tolerance.
func (v Vector2) Approx(rhs Vector2) bool {
	return math32.Approx(v.X, rhs.X) && math32.Approx(v.Y, rhs.Y)
}

// ApproxEpsilon reports whether both vectors are equal within the given
// component tolerance.
func (v Vector2) ApproxEpsilon(rhs Vector2, epsilon float32) bool {
	return math32.ApproxEpsilon(v.X, rhs.X, epsilon) && math32.ApproxEpsilon(v.Y, rhs.Y, epsilon)
}

// ToVector3 widens the vector into 3D with a zero z component.
func (v Vector2) ToVector3() Vector3 { return Vector3{X: v.X, Y: v.Y} }

func (v Vector2) String() string { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }
