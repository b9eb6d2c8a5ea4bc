package snake

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCellSetAddRemove(t *testing.T) {
	s := NewCellSet([]Cell{{0, 0}, {0, 1}, {1, 0}})

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", s.Len())
	}

	s.Remove(Cell{0, 0})
	if s.Has(Cell{0, 0}) {
		t.Error("removed cell still reported as member")
	}
	if !s.Has(Cell{1, 0}) || !s.Has(Cell{0, 1}) {
		t.Error("remaining cells lost after swap removal")
	}

	// Removing twice and adding twice are no-ops
	s.Remove(Cell{0, 0})
	s.Add(Cell{0, 1})
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}

	s.Add(Cell{0, 0})
	if !s.Has(Cell{0, 0}) || s.Len() != 3 {
		t.Error("re-added cell missing")
	}
}

func TestCellSetSampleReturnsMembers(t *testing.T) {
	b, _ := NewBoard(6, 6)
	s := NewCellSet(b.AllCells())
	for _, c := range b.AllCells() {
		if c.Row%2 == 0 {
			s.Remove(c)
		}
	}

	rng := rand.New(rand.NewSource(7))
	seen := make(map[Cell]bool)
	for i := 0; i < 500; i++ {
		c, err := s.Sample(rng)
		if err != nil {
			t.Fatalf("Sample() failed: %v", err)
		}
		if !s.Has(c) {
			t.Fatalf("Sample() returned non-member %v", c)
		}
		seen[c] = true
	}

	// 18 members, 500 draws: every member should come up
	if len(seen) != s.Len() {
		t.Errorf("Sample() covered %d of %d members", len(seen), s.Len())
	}
}

func TestCellSetSampleEmpty(t *testing.T) {
	s := NewCellSet(nil)
	_, err := s.Sample(rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrEmptyBoard) {
		t.Errorf("Sample() on empty set error = %v, expected ErrEmptyBoard", err)
	}
}

func TestSpawnerEmptyBoard(t *testing.T) {
	sp := NewSpawner(1)
	_, err := sp.Spawn(NewCellSet(nil))
	if !errors.Is(err, ErrEmptyBoard) {
		t.Errorf("Spawn() error = %v, expected ErrEmptyBoard", err)
	}
}

func TestSpawnerReseedRepeats(t *testing.T) {
	b, _ := NewBoard(10, 10)
	free := NewCellSet(b.AllCells())
	sp := NewSpawner(99)

	first := make([]Cell, 5)
	for i := range first {
		first[i], _ = sp.Spawn(free)
	}

	sp.Reseed(99)
	for i := range first {
		c, _ := sp.Spawn(free)
		if c != first[i] {
			t.Fatalf("draw %d after Reseed = %v, expected %v", i, c, first[i])
		}
	}
}
