package geom

// RaycastHit holds the result of a raycast query. The zero value is a
// miss.
type RaycastHit struct {
	// Point is the point of contact.
	Point Vector3
	// Normal is the surface normal at the point of contact.
	Normal Vector3
	// UV is the surface coordinate at the point of contact, for shapes
	// that carry one.
	UV Vector2
	// Distance is the distance from the ray origin to the point of
	// contact, in direction lengths.
	Distance float32
	// Hit reports whether the ray hit anything.
	Hit bool
}

// RaycastOption sets a field on a RaycastHit under construction.
type RaycastOption func(*RaycastHit)

// WithHit marks whether the raycast hit something.
func WithHit(hit bool) RaycastOption {
	return func(r *RaycastHit) { r.Hit = hit }
}

// WithHitPoint sets the point of contact.
func WithHitPoint(point Vector3) RaycastOption {
	return func(r *RaycastHit) { r.Point = point }
}

// WithHitNormal sets the surface normal at the point of contact.
func WithHitNormal(normal Vector3) RaycastOption {
	return func(r *RaycastHit) { r.Normal = normal }
}

// WithHitUV sets the surface coordinate at the point of contact.
func WithHitUV(uv Vector2) RaycastOption {
	return func(r *RaycastHit) { r.UV = uv }
}

// WithHitDistance sets the contact distance.
func WithHitDistance(distance float32) RaycastOption {
	return func(r *RaycastHit) { r.Distance = distance }
}

// NewRaycastHit builds a RaycastHit from the given options. Fields left
// unset keep their zero values.
func NewRaycastHit(opts ...RaycastOption) RaycastHit {
	var hit RaycastHit
	for _, opt := range opts {
		opt(&hit)
	}
	return hit
}

// Raycaster is implemented by shapes that can be intersected with a
// ray.
type Raycaster interface {
	Raycast(ray Ray3) RaycastHit
}
