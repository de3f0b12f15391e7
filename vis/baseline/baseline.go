package baseline

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrLengthMismatch is returned when antenna1 and antenna2 differ in length.
	ErrLengthMismatch = errors.New("antenna1 and antenna2 must have same length")
	// ErrNegativeAntenna is returned for an antenna index below zero.
	ErrNegativeAntenna = errors.New("antenna index must be >= 0")
)

// Key is a canonical baseline: A <= B.
type Key struct {
	A int
	B int
}

// Canonical returns the key of the baseline formed by antennas a1 and a2.
// Canonical(a1, a2) == Canonical(a2, a1).
func Canonical(a1, a2 int) Key {
	if a2 < a1 {
		return Key{A: a2, B: a1}
	}

	return Key{A: a1, B: a2}
}

// String formats the key as "A-B".
func (k Key) String() string {
	return strconv.Itoa(k.A) + "-" + strconv.Itoa(k.B)
}

// IsAutocorrelation reports whether both antennas are the same.
func (k Key) IsAutocorrelation() bool {
	return k.A == k.B
}

// Group holds the rows that share one canonical baseline.
type Group struct {
	Key  Key
	Rows []int
}

// Len returns the number of rows in the group.
func (g Group) Len() int {
	return len(g.Rows)
}

// Partition groups row indices by canonical baseline in one pass.
//
// Groups are ordered by the first row in which their baseline occurs. Rows
// inside a group are in ascending original order. The returned groups
// partition [0, len(antenna1)): every row is in exactly one group.
func Partition(antenna1, antenna2 []int) ([]Group, error) {
	if len(antenna1) != len(antenna2) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(antenna1), len(antenna2))
	}

	slots := make(map[Key]int)
	groups := make([]Group, 0)

	for row := range antenna1 {
		a1, a2 := antenna1[row], antenna2[row]
		if a1 < 0 || a2 < 0 {
			return nil, fmt.Errorf("%w: row %d has antennas (%d, %d)", ErrNegativeAntenna, row, a1, a2)
		}

		key := Canonical(a1, a2)

		slot, ok := slots[key]
		if !ok {
			slot = len(groups)
			slots[key] = slot
			groups = append(groups, Group{Key: key})
		}

		groups[slot].Rows = append(groups[slot].Rows, row)
	}

	return groups, nil
}

// Index returns, for each of the n rows, the position of its group in
// groups. Rows not covered by any group map to -1.
func Index(groups []Group, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}

	for slot, g := range groups {
		for _, row := range g.Rows {
			if row >= 0 && row < n {
				out[row] = slot
			}
		}
	}

	return out
}
