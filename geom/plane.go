package geom

import (
	"fmt"

	"github.com/cwbudde/algo-math32/math32"
)

// Plane is an infinite 3D plane described by a unit normal and its
// signed distance from the origin.
type Plane struct {
	normal   Vector3
	distance float32
}

// NewPlane creates a plane from a normal and a signed distance from
// the origin. The normal is normalized on construction.
func NewPlane(normal Vector3, distance float32) Plane {
	return Plane{normal: normal.Normalize(), distance: distance}
}

// NewPlaneFromPoint creates a plane from a normal and a point lying on
// the plane.
func NewPlaneFromPoint(normal, point Vector3) Plane {
	normal = normal.Normalize()
	return Plane{normal: normal, distance: -normal.Dot(point)}
}

// NewPlaneTriangulated creates a plane passing through three points.
func NewPlaneTriangulated(a, b, c Vector3) Plane {
	p := b.Sub(a)
	q := c.Sub(a)
	normal := p.Cross(q).Normalize()

	return Plane{normal: normal, distance: -normal.Dot(a)}
}

// PlaneXY returns the plane spanning the x and y axes.
func PlaneXY() Plane { return NewPlane(Vector3Forward(), 0) }

// PlaneXZ returns the plane spanning the x and z axes.
func PlaneXZ() Plane { return NewPlane(Vector3Up(), 0) }

// PlaneYZ returns the plane spanning the y and z axes.
func PlaneYZ() Plane { return NewPlane(Vector3Right(), 0) }

// Normal returns the unit normal of the plane.
func (p Plane) Normal() Vector3 { return p.normal }

// Distance returns the signed distance of the plane from the origin.
func (p Plane) Distance() float32 { return p.distance }

// Flipped returns the plane facing the opposite direction.
func (p Plane) Flipped() Plane {
	return Plane{normal: p.normal.Neg(), distance: -p.distance}
}

// DistanceToPoint returns the signed distance from the point to the
// plane.
func (p Plane) DistanceToPoint(point Vector3) float32 {
	return p.normal.Dot(point) + p.distance
}

// ClosestPoint returns the point on the plane closest to the given
// point.
func (p Plane) ClosestPoint(point Vector3) Vector3 {
	return point.Sub(p.normal.Scale(p.DistanceToPoint(point)))
}

// IsOnPlane reports whether the point lies on the plane within the
// default tolerance.
func (p Plane) IsOnPlane(point Vector3) bool {
	return math32.Approx(p.normal.Dot(point)+p.distance, 0)
}

// IsOnPositiveSide reports whether the point lies on the side the
// normal points towards.
func (p Plane) IsOnPositiveSide(point Vector3) bool {
	return p.DistanceToPoint(point) > 0
}

// IsOnSameSide reports whether both points lie on the same side of the
// plane.
func (p Plane) IsOnSameSide(a, b Vector3) bool {
	return p.IsOnPositiveSide(a) == p.IsOnPositiveSide(b)
}

// Raycast intersects the ray with the plane. Rays parallel to the
// plane miss, and intersections behind the ray origin report a miss
// while still carrying the negative distance.
func (p Plane) Raycast(ray Ray3) RaycastHit {
	diff := ray.Direction.Dot(p.normal)
	dist := -(ray.Origin.Dot(p.normal) + p.distance)

	if math32.Approx(diff, 0) {
		return RaycastHit{}
	}

	distance := dist / diff

	return NewRaycastHit(
		WithHit(distance > 0),
		WithHitDistance(distance),
		WithHitNormal(p.normal),
		WithHitPoint(ray.GetPoint(distance)),
	)
}

// Approx reports whether both planes are equal within the default
// component tolerance.
func (p Plane) Approx(rhs Plane) bool {
	return p.normal.Approx(rhs.normal) && math32.Approx(p.distance, rhs.distance)
}

func (p Plane) String() string {
	return fmt.Sprintf("normal: %v, distance: %v", p.normal, p.distance)
}
