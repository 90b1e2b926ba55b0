package geom

import "fmt"

// Ray2 is a 2D ray with an origin and a direction. The direction is
// kept as given; it is not normalized on construction.
type Ray2 struct {
	Origin    Vector2
	Direction Vector2
}

// NewRay2 creates a 2D ray from an origin and a direction.
func NewRay2(origin, direction Vector2) Ray2 {
	return Ray2{Origin: origin, Direction: direction}
}

// GetPoint returns the point along the ray at the given distance,
// measured in direction lengths.
func (r Ray2) GetPoint(distance float32) Vector2 {
	return r.Origin.Add(r.Direction.Scale(distance))
}

// ClosestPoint returns the point on the ray's line closest to the
// given point.
func (r Ray2) ClosestPoint(point Vector2) Vector2 {
	diff := point.Sub(r.Origin)
	return diff.Project(r.Direction).Add(r.Origin)
}

// Distance returns the distance between the point and the ray's line.
func (r Ray2) Distance(point Vector2) float32 {
	return point.Distance(r.ClosestPoint(point))
}

func (r Ray2) String() string {
	return fmt.Sprintf("origin: %v, direction: %v", r.Origin, r.Direction)
}

// Ray3 is a 3D ray with an origin and a direction. The direction is
// kept as given; it is not normalized on construction.
type Ray3 struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay3 creates a 3D ray from an origin and a direction.
func NewRay3(origin, direction Vector3) Ray3 {
	return Ray3{Origin: origin, Direction: direction}
}

// GetPoint returns the point along the ray at the given distance,
// measured in direction lengths.
func (r Ray3) GetPoint(distance float32) Vector3 {
	return r.Origin.Add(r.Direction.Scale(distance))
}

// ClosestPoint returns the point on the ray's line closest to the
// given point.
func (r Ray3) ClosestPoint(point Vector3) Vector3 {
	diff := point.Sub(r.Origin)
	return diff.Project(r.Direction).Add(r.Origin)
}

// Distance returns the distance between the point and the ray's line.
func (r Ray3) Distance(point Vector3) float32 {
	return point.Distance(r.ClosestPoint(point))
}

func (r Ray3) String() string {
	return fmt.Sprintf("origin: %v, direction: %v", r.Origin, r.Direction)
}
