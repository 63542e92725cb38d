package testutil

import (
	"math"
)

// TB is the subset of testing.TB the assertions need. Both *testing.T and
// *rapid.T satisfy it.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// AssertScaleInRange fails the test when scale is NaN, infinite, or outside
// [lo, hi].
func AssertScaleInRange(t TB, scale, lo, hi float64) {
	t.Helper()
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		t.Fatalf("scale is not finite: %v", scale)
	}
	if scale < lo || scale > hi {
		t.Fatalf("scale %v outside [%v, %v]", scale, lo, hi)
	}
}

// AssertApprox fails when got and want differ by more than eps.
func AssertApprox(t TB, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Fatalf("expected %v ± %v, got %v", want, eps, got)
	}
}
