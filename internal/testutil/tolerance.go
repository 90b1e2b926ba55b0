// Package testutil provides shared tolerance helpers for float32 tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNear fails t if got and want differ by more than eps
// (absolute tolerance).
func RequireNear(t *testing.T, got, want, eps float32) {
	t.Helper()
	diff := math.Abs(float64(got) - float64(want))
	if math.IsNaN(diff) || diff > float64(eps) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float32, eps float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if math.IsNaN(diff) || diff > float64(eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireNaN fails t if got is not NaN.
func RequireNaN(t *testing.T, got float32) {
	t.Helper()
	if !math.IsNaN(float64(got)) {
		t.Fatalf("got %v, want NaN", got)
	}
}

// RequireInf fails t if got is not an infinity of the given sign
// (sign > 0 for +Inf, sign < 0 for -Inf, 0 for either).
func RequireInf(t *testing.T, got float32, sign int) {
	t.Helper()
	if !math.IsInf(float64(got), sign) {
		t.Fatalf("got %v, want Inf (sign %d)", got, sign)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return float32(maxDiff), nil
}
