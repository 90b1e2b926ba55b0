package geom

import "testing"

func TestNewRaycastHitDefaults(t *testing.T) {
	hit := NewRaycastHit()
	if hit != (RaycastHit{}) {
		t.Fatalf("NewRaycastHit() = %+v, want zero value", hit)
	}
}

func TestNewRaycastHitOptions(t *testing.T) {
	hit := NewRaycastHit(
		WithHit(true),
		WithHitPoint(Vector3{X: 1, Y: 2, Z: 3}),
		WithHitNormal(Vector3Up()),
		WithHitUV(Vector2{X: 0.25, Y: 0.75}),
		WithHitDistance(4.5),
	)

	if !hit.Hit {
		t.Fatal("Hit = false, want true")
	}
	if hit.Point != (Vector3{X: 1, Y: 2, Z: 3}) {
		t.Fatalf("Point = %v", hit.Point)
	}
	if hit.Normal != Vector3Up() {
		t.Fatalf("Normal = %v", hit.Normal)
	}
	if hit.UV != (Vector2{X: 0.25, Y: 0.75}) {
		t.Fatalf("UV = %v", hit.UV)
	}
	if hit.Distance != 4.5 {
		t.Fatalf("Distance = %v", hit.Distance)
	}
}

func TestRaycasterInterface(t *testing.T) {
	var caster Raycaster = PlaneXZ()

	hit := caster.Raycast(NewRay3(Vector3{Y: 1}, Vector3Down()))
	if !hit.Hit {
		t.Fatal("expected a hit through the interface")
	}
}
