package uvw

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput reports a caller contract violation: mismatched
	// lengths, decreasing time, a bad antenna index or repeated timestamps
	// within one baseline.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerateGroup reports a baseline with too few rows to difference.
	ErrDegenerateGroup = errors.New("degenerate baseline group")
)

func validateLengths(nTime, nAnt1, nAnt2, nUVW int) error {
	if nTime != nAnt1 || nTime != nAnt2 || nTime != nUVW {
		return fmt.Errorf("%w: length mismatch: time=%d antenna1=%d antenna2=%d uvw=%d",
			ErrInvalidInput, nTime, nAnt1, nAnt2, nUVW)
	}
	return nil
}

func validateMonotonic(time []float64) error {
	for i, t := range time {
		if math.IsNaN(t) {
			return fmt.Errorf("%w: time[%d] is NaN", ErrInvalidInput, i)
		}
	}

	for i := 1; i < len(time); i++ {
		if !(time[i] >= time[i-1]) {
			return fmt.Errorf("%w: time must be monotonically non-decreasing: time[%d]=%v < time[%d]=%v",
				ErrInvalidInput, i, time[i], i-1, time[i-1])
		}
	}
	return nil
}
