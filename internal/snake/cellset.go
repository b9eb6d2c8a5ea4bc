package snake

import "math/rand"

// CellSet is a set of cells with O(1) add, remove, membership and uniform sampling.
// Members live in a dense slice; index maps each member to its slot so removal can
// swap the last member into the hole.
type CellSet struct {
	cells []Cell
	index map[Cell]int
}

// NewCellSet creates a set holding the given cells, in order, without duplicates.
func NewCellSet(cells []Cell) *CellSet {
	s := &CellSet{
		cells: make([]Cell, 0, len(cells)),
		index: make(map[Cell]int, len(cells)),
	}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Len returns the number of members.
func (s *CellSet) Len() int {
	return len(s.cells)
}

// Has reports whether c is a member.
func (s *CellSet) Has(c Cell) bool {
	_, ok := s.index[c]
	return ok
}

// Add inserts c. Adding an existing member is a no-op.
func (s *CellSet) Add(c Cell) {
	if _, ok := s.index[c]; ok {
		return
	}
	s.index[c] = len(s.cells)
	s.cells = append(s.cells, c)
}

// Remove deletes c. Removing a non-member is a no-op.
func (s *CellSet) Remove(c Cell) {
	i, ok := s.index[c]
	if !ok {
		return
	}
	last := len(s.cells) - 1
	if i != last {
		moved := s.cells[last]
		s.cells[i] = moved
		s.index[moved] = i
	}
	s.cells = s.cells[:last]
	delete(s.index, c)
}

// Sample returns a uniformly random member.
func (s *CellSet) Sample(rng *rand.Rand) (Cell, error) {
	if len(s.cells) == 0 {
		return Cell{}, ErrEmptyBoard
	}
	return s.cells[rng.Intn(len(s.cells))], nil
}

// Cells returns a copy of the members in internal order.
func (s *CellSet) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}
