//go:build puremath

package math32

import "testing"

func TestTruncSaturation(t *testing.T) {
	if got := Trunc(3e9); got != 2147483648 {
		t.Fatalf("Trunc(3e9) = %v, want 2147483648", got)
	}
	if got := Trunc(-3e9); got != -2147483648 {
		t.Fatalf("Trunc(-3e9) = %v, want -2147483648", got)
	}
	if got := Trunc(nan32); got != 0 {
		t.Fatalf("Trunc(NaN) = %v, want 0", got)
	}
}
