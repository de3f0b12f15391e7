// Package uvw estimates the rate of change of baseline uvw coordinates.
//
// [DeltaUVWDeltaTime] takes per-row time, antenna pair and uvw arrays and
// returns duvw/dt for every row. Rows are grouped by baseline (see package
// baseline), mirrored baselines included, and each group is differenced in
// its own time order:
//
//	duvw, err := uvw.DeltaUVWDeltaTime(time, antenna1, antenna2, coords)
//	if errors.Is(err, uvw.ErrDegenerateGroup) {
//		// a baseline was seen only once
//	}
//
// # Edge cases
//
// A baseline with k rows yields k-1 forward differences. The last row has no
// following sample and gets a copy of an earlier difference:
//
//   - [LastRowSecondToLast] (default) copies difference k-3, or the only
//     difference when k == 2.
//   - [LastRowLast] copies difference k-2.
//
// A baseline with a single row fails with [ErrDegenerateGroup] unless
// [WithSingletonPolicy]([SingletonZero]) is given.
//
// Time must be non-decreasing across all rows. Two rows of the same baseline
// with equal time are rejected with [ErrInvalidInput].
//
// # Concurrency
//
// [WithWorkers] spreads baseline groups over a fixed number of goroutines.
// The result does not depend on the worker count.
package uvw
