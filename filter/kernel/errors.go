package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSupport is returned for a kernel support below one cell.
	ErrInvalidSupport = errors.New("kernel support must be > 0")
	// ErrInvalidOversampling is returned for an oversampling factor below one.
	ErrInvalidOversampling = errors.New("kernel oversampling must be > 0")
	// ErrOutsideGrid is returned when a coordinate snaps outside the grid.
	ErrOutsideGrid = errors.New("coordinate outside grid")
	// ErrEmptyTaps is returned when a taper is requested for no taps.
	ErrEmptyTaps = errors.New("kernel taps must not be empty")
	// ErrZeroTaper is returned when the taper has no response at its centre.
	ErrZeroTaper = errors.New("kernel taper is zero at centre")
)

func validateShape(support, oversampling int) error {
	if support <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSupport, support)
	}
	if oversampling <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOversampling, oversampling)
	}
	return nil
}
