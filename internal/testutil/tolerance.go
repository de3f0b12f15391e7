package testutil

import (
	"fmt"
	"math"
	"testing"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, either
// absolutely or relative to the larger magnitude.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// RequireRowsNearlyEqual fails t if two N×3 row sets differ in length or if
// any component differs by more than eps.
func RequireRowsNearlyEqual(t *testing.T, got, want [][3]float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		for c := range 3 {
			diff := math.Abs(got[i][c] - want[i][c])
			if diff > eps {
				t.Fatalf("row %d col %d: got %v, want %v (diff %v > eps %v)", i, c, got[i][c], want[i][c], diff, eps)
			}
		}
	}
}

// RequireFiniteRows fails t if any component is NaN or Inf.
func RequireFiniteRows(t *testing.T, rows [][3]float64) {
	t.Helper()
	for i, r := range rows {
		for c, v := range r {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("row %d col %d: non-finite value %v", i, c, v)
			}
		}
	}
}

// MaxRowDiff returns the largest absolute component difference between two
// row sets. Returns an error if they differ in length.
func MaxRowDiff(a, b [][3]float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("row count mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		for c := range 3 {
			d := math.Abs(a[i][c] - b[i][c])
			if d > maxDiff {
				maxDiff = d
			}
		}
	}
	return maxDiff, nil
}
