package snake

import "fmt"

// Direction is a unit step expressed as (row delta, column delta).
type Direction struct {
	DRow, DCol int
}

var (
	DirNone  = Direction{}
	DirUp    = Direction{DRow: -1}
	DirDown  = Direction{DRow: 1}
	DirLeft  = Direction{DCol: -1}
	DirRight = Direction{DCol: 1}
)

// NewDirection validates a (row delta, column delta) pair.
// Exactly one component must be ±1, or both zero.
func NewDirection(dRow, dCol int) (Direction, error) {
	d := Direction{DRow: dRow, DCol: dCol}
	if !d.Valid() {
		return DirNone, fmt.Errorf("%w: (%d,%d)", ErrInvalidDirection, dRow, dCol)
	}
	return d, nil
}

// Valid reports whether d is one of the four unit vectors or the zero vector.
func (d Direction) Valid() bool {
	switch d {
	case DirNone, DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// IsZero reports whether d is the zero vector.
func (d Direction) IsZero() bool {
	return d == DirNone
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
	}
}

// ParseDirection converts a name such as "up" or "left" into a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "none", "":
		return DirNone, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirNone, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
}
