package rooms

import "errors"

var (
	// ErrInvalidConfiguration is returned by Generate when the supplied
	// Options cannot produce a layout. The wrapped message names the
	// offending parameter.
	ErrInvalidConfiguration = errors.New("rooms: invalid configuration")

	// ErrOutOfBounds is returned by Grid.PlaceBigCell when part of the big
	// cell would fall outside the grid.
	ErrOutOfBounds = errors.New("rooms: big cell out of bounds")

	// ErrCollision is returned by Grid.PlaceBigCell when part of the big
	// cell is already occupied.
	ErrCollision = errors.New("rooms: big cell collision")
)
