// Package snake implements the grid snake simulation: board geometry, the snake
// body, fruit placement, collision detection and the tick state machine.
// It has no UI or timing dependencies; hosts drive it by calling Tick.
package snake

import "fmt"

// Cell is one grid position. Rows grow downward, columns grow rightward.
type Cell struct {
	Row, Col int
}

// Add returns the cell reached by moving one step in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is the fixed-size playing field. It is never mutated after NewBoard.
type Board struct {
	width  int
	height int
}

// MaxCells caps the board area. Bodies and availability sets are allocated
// for the whole board up front.
const MaxCells = 1 << 22

// NewBoard creates a board with the given dimensions.
func NewBoard(width, height int) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, fmt.Errorf("%w: board %dx%d", ErrInvalidConfiguration, width, height)
	}
	if width > MaxCells/height {
		return Board{}, fmt.Errorf("%w: board %dx%d exceeds %d cells", ErrInvalidConfiguration, width, height, MaxCells)
	}
	return Board{width: width, height: height}, nil
}

// Width returns the number of columns.
func (b Board) Width() int { return b.width }

// Height returns the number of rows.
func (b Board) Height() int { return b.height }

// Size returns the total number of cells.
func (b Board) Size() int { return b.width * b.height }

// InBounds reports whether c lies on the board.
func (b Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

// InitialCell returns the geometric center where a new snake starts.
func (b Board) InitialCell() Cell {
	return Cell{Row: b.height / 2, Col: b.width / 2}
}

// AllCells returns every cell in row-major order.
func (b Board) AllCells() []Cell {
	cells := make([]Cell, 0, b.Size())
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}
