package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVector3Constructors(t *testing.T) {
	if got := Vector3Zero(); got != (Vector3{}) {
		t.Fatalf("Vector3Zero() = %v", got)
	}
	if got := Vector3Forward(); got != (Vector3{Z: 1}) {
		t.Fatalf("Vector3Forward() = %v", got)
	}
	if got := Vector3Back(); got != (Vector3{Z: -1}) {
		t.Fatalf("Vector3Back() = %v", got)
	}
	if got := Vector3One(); got != (Vector3{X: 1, Y: 1, Z: 1}) {
		t.Fatalf("Vector3One() = %v", got)
	}
}

func TestVector3FromAngles(t *testing.T) {
	tests := []struct {
		name     string
		theta    float32
		phi      float32
		expected Vector3
	}{
		{name: "diagonal", theta: 45, phi: 45, expected: Vector3{X: 0.5, Y: 0.5, Z: 0.70710678}},
		{name: "mirrored", theta: -127, phi: 127, expected: Vector3{X: 0.3621814, Y: 0.4806309, Z: 0.7986355}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vector3FromAnglesDeg(tt.theta, tt.phi)
			if diff := cmp.Diff(tt.expected, got, vec3Near); diff != "" {
				t.Fatalf("Vector3FromAnglesDeg(%v, %v) mismatch (-want +got):\n%s", tt.theta, tt.phi, diff)
			}
		})
	}
}

func TestVector3Magnitude(t *testing.T) {
	if got := (Vector3{X: -1, Y: 2, Z: 2}).Magnitude(); !nearlyEqual(got, 3, testEps) {
		t.Fatalf("Magnitude() = %v, want 3", got)
	}
	if got := (Vector3{X: -1, Y: 2, Z: 2}).SquareMagnitude(); got != 9 {
		t.Fatalf("SquareMagnitude() = %v, want 9", got)
	}
}

func TestVector3Cross(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 4, Y: 5, Z: 6}

	if got := a.Cross(b); got != (Vector3{X: -3, Y: 6, Z: -3}) {
		t.Fatalf("Cross() = %v, want (-3, 6, -3)", got)
	}
	if got := b.Cross(a); got != (Vector3{X: 3, Y: -6, Z: 3}) {
		t.Fatalf("Cross() = %v, want (3, -6, 3)", got)
	}
	// a vector crossed with itself vanishes
	if got := a.Cross(a); got != (Vector3{}) {
		t.Fatalf("Cross() = %v, want zero vector", got)
	}
}

func TestVector3AngleBetween(t *testing.T) {
	a := Vector3{X: 0.25, Y: -0.5, Z: 1.25}
	b := Vector3{X: 2, Y: 0.5, Z: -1}

	if got := a.AngleBetween(b); !nearlyEqual(got, 1.8951832, testEps) {
		t.Fatalf("AngleBetween() = %v, want 1.8951832", got)
	}

	axis := Vector3{X: 1, Y: -1}
	if got := a.SignedAngleBetween(b, axis); !nearlyEqual(got, -1.8951832, testEps) {
		t.Fatalf("SignedAngleBetween() = %v, want -1.8951832", got)
	}
	if got := a.SignedAngleBetweenDeg(b, axis); !nearlyEqual(got, -108.586, 0.01) {
		t.Fatalf("SignedAngleBetweenDeg() = %v, want -108.586", got)
	}
}

func TestVector3Lerp(t *testing.T) {
	a := Vector3{X: 0, Y: 4, Z: -10}
	b := Vector3{X: 1, Y: 10, Z: -4}

	if diff := cmp.Diff(Vector3{X: 0.7, Y: 8.2, Z: -5.8}, a.LerpUnclamped(b, 0.7), vec3Near); diff != "" {
		t.Fatalf("LerpUnclamped() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b, a.Lerp(b, 2), vec3Near); diff != "" {
		t.Fatalf("Lerp() mismatch (-want +got):\n%s", diff)
	}
}

func TestVector3MoveTowards(t *testing.T) {
	a := Vector3{X: 0.25, Y: -0.5, Z: 1.25}
	b := Vector3{X: 2, Y: 0.5, Z: -1}

	if diff := cmp.Diff(Vector3{X: 0.3658648, Y: -0.4337915, Z: 1.101031}, a.MoveTowards(b, 0.2), vec3Near); diff != "" {
		t.Fatalf("MoveTowards() mismatch (-want +got):\n%s", diff)
	}
	if got := a.MoveTowards(b, 20); got != b {
		t.Fatalf("MoveTowards() = %v, want %v", got, b)
	}
}

func TestVector3Normalize(t *testing.T) {
	got := Vector3One().Normalize()
	if diff := cmp.Diff(Vector3{X: 0.5773503, Y: 0.5773503, Z: 0.5773503}, got, vec3Near); diff != "" {
		t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
	}

	got = (Vector3{X: -0.1, Y: 1, Z: -2.4}).Normalize()
	if diff := cmp.Diff(Vector3{X: -0.03843312, Y: 0.3843312, Z: -0.9223949}, got, vec3Near); diff != "" {
		t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
	}

	if got := Vector3Zero().Normalize(); got != (Vector3{}) {
		t.Fatalf("Normalize() = %v, want zero vector", got)
	}
}

func TestVector3Project(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 4, Y: 5, Z: 6}

	if diff := cmp.Diff(Vector3{X: 1.6623377, Y: 2.0779221, Z: 2.4935065}, a.Project(b), vec3Near); diff != "" {
		t.Fatalf("Project() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Vector3{X: -0.66233766, Y: -0.077922106, Z: 0.50649357}, a.Reject(b), vec3Near); diff != "" {
		t.Fatalf("Reject() mismatch (-want +got):\n%s", diff)
	}
}

func TestVector3Reflect(t *testing.T) {
	tests := []struct {
		name      string
		direction Vector3
		normal    Vector3
		expected  Vector3
	}{
		{
			name:      "axis aligned",
			direction: Vector3{X: 1, Z: 1},
			normal:    Vector3{Z: -1},
			expected:  Vector3{X: 1, Z: -1},
		},
		{
			name:      "skewed",
			direction: Vector3{X: 0.25, Y: -0.5, Z: 1.25},
			normal:    Vector3{X: 1, Y: 0.5, Z: -1},
			expected:  Vector3{X: 2.75, Y: 0.75, Z: -1.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.direction.Reflect(tt.normal)
			if diff := cmp.Diff(tt.expected, got, vec3Near); diff != "" {
				t.Fatalf("Reflect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVector3RotateTowards(t *testing.T) {
	a := Vector3{X: 1, Y: 3, Z: 4}
	b := Vector3{X: 4, Y: 6, Z: 7}

	got := a.RotateTowards(b, 0.1, 0.1)
	want := Vector3{X: 1.504205, Y: 3.097963, Z: 3.894842}
	if !got.ApproxEpsilon(want, 1e-3) {
		t.Fatalf("RotateTowards() = %v, want %v", got, want)
	}

	// a large enough budget reaches the target in one step
	if got := a.RotateTowards(b, 10, 100); !got.ApproxEpsilon(b, 1e-3) {
		t.Fatalf("RotateTowards() = %v, want %v", got, b)
	}
}

func TestVector3Slerp(t *testing.T) {
	a := Vector3{X: 1, Y: 3, Z: 4}
	b := Vector3{X: 4, Y: 6, Z: 7}

	got := a.Slerp(b, 0.7)
	want := Vector3{X: 2.903773, Y: 5.117129, Z: 6.223807}
	if !got.ApproxEpsilon(want, 1e-3) {
		t.Fatalf("Slerp() = %v, want %v", got, want)
	}

	// near-parallel directions fall back to linear interpolation
	c := Vector3{X: 1, Y: 1, Z: 1}
	d := Vector3{X: 2.0001, Y: 2, Z: 2}
	mid := c.Slerp(d, 0.5)
	if !nearlyEqual(mid.Magnitude(), 2.5981, 1e-2) {
		t.Fatalf("Slerp() magnitude = %v, want 2.5981", mid.Magnitude())
	}
}

func TestVector3SmoothDamp(t *testing.T) {
	current := Vector3{X: 1, Y: 2, Z: 3}
	target := Vector3{X: 14, Y: 15, Z: 16}
	velocity := Vector3{X: 4, Y: 5, Z: 6}

	position, newVelocity := current.SmoothDamp(target, velocity, 8, 2.3, 0.2)

	wantPosition := Vector3{X: 1.7734365, Y: 2.9636898, Z: 4.153943}
	wantVelocity := Vector3{X: 3.7411351, Y: 4.644839, Z: 5.548543}
	if diff := cmp.Diff(wantPosition, position, vec3Near); diff != "" {
		t.Fatalf("SmoothDamp() position mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantVelocity, newVelocity, vec3Near); diff != "" {
		t.Fatalf("SmoothDamp() velocity mismatch (-want +got):\n%s", diff)
	}
}

func TestVector3SmoothDampClampsEveryAxis(t *testing.T) {
	// with identical per-axis inputs the max-speed clamp must scale
	// every component, so the outputs stay symmetric
	position, velocity := Vector3Zero().SmoothDamp(Vector3{X: 20, Y: 20, Z: 20}, Vector3One(), 4, 1.5, 0.1)

	if position.X != position.Y || position.Y != position.Z {
		t.Fatalf("SmoothDamp() position = %v, want equal components", position)
	}
	if velocity.X != velocity.Y || velocity.Y != velocity.Z {
		t.Fatalf("SmoothDamp() velocity = %v, want equal components", velocity)
	}
}

func TestVector3DivByZero(t *testing.T) {
	if got := (Vector3{X: 1, Y: 2, Z: 3}).Div(0); got != (Vector3{}) {
		t.Fatalf("Div(0) = %v, want zero vector", got)
	}
}

func TestVector3Reciprocal(t *testing.T) {
	got := (Vector3{X: 2, Y: 0, Z: 4}).Reciprocal(1)
	if got != (Vector3{X: 0.5, Y: 0, Z: 0.25}) {
		t.Fatalf("Reciprocal() = %v, want (0.5, 0, 0.25)", got)
	}
}

func TestVector3Conversions(t *testing.T) {
	v := Vector3{X: 1, Y: 2, Z: 3}
	if got := v.ToVector2(); got != (Vector2{X: 1, Y: 2}) {
		t.Fatalf("ToVector2() = %v", got)
	}
	if got := v.String(); got != "(1, 2, 3)" {
		t.Fatalf("String() = %q", got)
	}
}
