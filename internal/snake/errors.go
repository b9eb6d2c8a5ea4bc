package snake

import "errors"

var (
	// ErrInvalidConfiguration is returned when a board has a non-positive dimension
	// or the growth increment is negative.
	ErrInvalidConfiguration = errors.New("snake: invalid configuration")

	// ErrEmptyBoard is returned when a fruit is requested but every cell is occupied.
	ErrEmptyBoard = errors.New("snake: no free cell left on board")

	// ErrInvalidDirection is returned for direction values other than the four
	// unit vectors and the zero vector.
	ErrInvalidDirection = errors.New("snake: invalid direction")

	// ErrNotRunning is returned when steering a snake that is no longer alive.
	ErrNotRunning = errors.New("snake: simulation is not running")
)
