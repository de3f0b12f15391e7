package uvw

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DeltaUVWDeltaTimeDense is DeltaUVWDeltaTime for an N×3 gonum matrix.
// An input with zero rows yields an empty *mat.Dense.
func DeltaUVWDeltaTimeDense(time []float64, antenna1, antenna2 []int, uvw mat.Matrix, opts ...Option) (*mat.Dense, error) {
	rows, cols := uvw.Dims()
	if err := validateLengths(len(time), len(antenna1), len(antenna2), rows); err != nil {
		return nil, err
	}

	if err := validateMonotonic(time); err != nil {
		return nil, err
	}

	if rows == 0 {
		return &mat.Dense{}, nil
	}

	if cols != 3 {
		return nil, fmt.Errorf("%w: uvw must have 3 columns, got %d", ErrInvalidInput, cols)
	}

	in := make([][3]float64, rows)
	for i := range in {
		in[i] = [3]float64{uvw.At(i, 0), uvw.At(i, 1), uvw.At(i, 2)}
	}

	out, err := DeltaUVWDeltaTime(time, antenna1, antenna2, in, opts...)
	if err != nil {
		return nil, err
	}

	return mat.NewDense(rows, 3, Flatten(out)), nil
}

// Flatten returns rows as a row-major slice of length 3*len(rows).
func Flatten(rows [][3]float64) []float64 {
	out := make([]float64, 0, 3*len(rows))
	for _, r := range rows {
		out = append(out, r[:]...)
	}
	return out
}
