package kernel

import (
	"fmt"
	"math"
)

// Position locates a continuous coordinate on an oversampled grid.
type Position struct {
	Cell  int     // nearest grid cell
	Frac  float64 // coordinate minus its floor, in [0, 1)
	Phase int     // oversampling phase in [0, oversampling)
}

// Snap splits exact into its nearest cell and oversampling phase. Halves
// round to even. An oversampling below one is treated as one.
func Snap(exact float64, oversampling int) Position {
	if oversampling < 1 {
		oversampling = 1
	}

	frac := exact - math.Floor(exact)
	phase := int(math.RoundToEven(frac*float64(oversampling))) % oversampling

	return Position{
		Cell:  int(math.RoundToEven(exact)),
		Frac:  frac,
		Phase: phase,
	}
}

// SnapInGrid snaps a coordinate given relative to the centre of an nx-cell
// grid. The returned cell is in grid coordinates and must lie in (0, nx].
func SnapInGrid(exact float64, nx, oversampling int) (Position, error) {
	if oversampling <= 0 {
		return Position{}, fmt.Errorf("%w: %d", ErrInvalidOversampling, oversampling)
	}

	p := Snap(exact+float64(nx/2), oversampling)
	if p.Cell <= 0 || p.Cell > nx {
		return Position{}, fmt.Errorf("%w: cell %d not in (0, %d]", ErrOutsideGrid, p.Cell, nx)
	}

	return p, nil
}
