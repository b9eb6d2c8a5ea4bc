package snake

import "testing"

// buildBody returns a body laid out on cells (head first) heading in dir.
func buildBody(cells []Cell, capacity int, dir Direction) *Body {
	b := NewBody(cells[len(cells)-1], capacity)
	b.Grow(len(cells) - 1)
	for i := len(cells) - 2; i >= 0; i-- {
		b.Advance(cells[i])
	}
	b.dir = dir
	return b
}

func TestBodyAdvancePopsTail(t *testing.T) {
	b := buildBody([]Cell{{0, 2}, {0, 1}, {0, 0}}, 9, DirRight)

	removed, popped := b.Advance(Cell{1, 2})
	if !popped || removed != (Cell{0, 0}) {
		t.Fatalf("Advance() = (%v, %v), expected ((0,0), true)", removed, popped)
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", b.Len())
	}
	if b.Head() != (Cell{1, 2}) || b.Tail() != (Cell{0, 1}) {
		t.Errorf("Head/Tail = %v/%v, expected (1,2)/(0,1)", b.Head(), b.Tail())
	}
	if b.Contains(Cell{0, 0}) {
		t.Error("popped tail still reported as occupied")
	}
}

func TestBodyAdvanceKeepsTailWhileGrowing(t *testing.T) {
	b := NewBody(Cell{0, 0}, 9)
	b.Grow(2)

	if _, popped := b.Advance(Cell{0, 1}); popped {
		t.Error("tail popped while growth pending")
	}
	if _, popped := b.Advance(Cell{0, 2}); popped {
		t.Error("tail popped while growth pending")
	}
	if b.Growth() != 0 || b.Len() != 3 {
		t.Fatalf("Growth/Len = %d/%d, expected 0/3", b.Growth(), b.Len())
	}
	if _, popped := b.Advance(Cell{1, 2}); !popped {
		t.Error("tail kept after growth exhausted")
	}

	expected := []Cell{{1, 2}, {0, 2}, {0, 1}}
	for i, c := range b.Cells() {
		if c != expected[i] {
			t.Errorf("Cells()[%d] = %v, expected %v", i, c, expected[i])
		}
	}
}

func TestBodyRingWraps(t *testing.T) {
	// Capacity 3 forces the ring start to wrap many times
	b := NewBody(Cell{0, 0}, 3)
	b.Grow(1)
	path := []Cell{{0, 1}, {1, 1}, {1, 0}, {0, 0}, {0, 1}, {1, 1}}
	for _, c := range path {
		b.Advance(c)
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", b.Len())
	}
	if b.Head() != (Cell{1, 1}) || b.Tail() != (Cell{0, 1}) {
		t.Errorf("Head/Tail = %v/%v, expected (1,1)/(0,1)", b.Head(), b.Tail())
	}
}

func TestBodyContainsExcludingTail(t *testing.T) {
	b := buildBody([]Cell{{1, 1}, {1, 2}, {2, 2}}, 9, DirLeft)

	if !b.Contains(Cell{2, 2}) {
		t.Error("Contains(tail) = false, expected true")
	}
	if b.ContainsExcludingTail(Cell{2, 2}) {
		t.Error("ContainsExcludingTail(tail) = true, expected false")
	}
	if !b.ContainsExcludingTail(Cell{1, 2}) {
		t.Error("ContainsExcludingTail(neck) = false, expected true")
	}
}

func TestBodySteer(t *testing.T) {
	t.Run("reversal rejected when longer than one", func(t *testing.T) {
		b := buildBody([]Cell{{2, 3}, {2, 2}, {2, 1}}, 25, DirRight)
		if b.Steer(DirLeft) {
			t.Error("Steer(left) accepted while heading right with length 3")
		}
		if b.Direction() != DirRight {
			t.Errorf("Direction() = %v, expected right", b.Direction())
		}
	})

	t.Run("reversal accepted at length one", func(t *testing.T) {
		b := NewBody(Cell{2, 2}, 25)
		b.dir = DirRight
		if !b.Steer(DirLeft) {
			t.Error("Steer(left) rejected for a length-1 snake")
		}
	})

	t.Run("one change per tick", func(t *testing.T) {
		b := buildBody([]Cell{{2, 3}, {2, 2}}, 25, DirRight)
		if !b.Steer(DirUp) {
			t.Fatal("Steer(up) rejected")
		}
		if b.Steer(DirLeft) {
			t.Error("second change within one tick accepted")
		}
		if b.Direction() != DirUp {
			t.Errorf("Direction() = %v, expected up", b.Direction())
		}
		b.Settle()
		if !b.Steer(DirLeft) {
			t.Error("Steer(left) rejected after Settle")
		}
	})

	t.Run("rejected change keeps the slot open", func(t *testing.T) {
		b := buildBody([]Cell{{2, 3}, {2, 2}}, 25, DirRight)
		b.Steer(DirLeft)
		if !b.Steer(DirDown) {
			t.Error("Steer(down) rejected after a rejected reversal")
		}
	})

	t.Run("zero vector ignored", func(t *testing.T) {
		b := NewBody(Cell{0, 0}, 4)
		b.dir = DirDown
		if b.Steer(DirNone) {
			t.Error("Steer(none) accepted")
		}
		if b.Direction() != DirDown {
			t.Errorf("Direction() = %v, expected down", b.Direction())
		}
	})
}
