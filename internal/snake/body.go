package snake

// Body is the snake: its cells from head to tail, heading, pending growth and the
// per-tick steering slot.
//
// Cells are kept in a ring buffer sized to the board so pushing a head and
// popping a tail are both O(1).
type Body struct {
	ring     []Cell
	start    int // ring index of the head
	n        int
	occupied map[Cell]struct{}

	dir     Direction
	growth  int
	steered bool // a direction change was accepted since the last tick
}

// NewBody creates a length-1 snake at start with room for capacity cells.
func NewBody(start Cell, capacity int) *Body {
	if capacity < 1 {
		capacity = 1
	}
	b := &Body{
		ring:     make([]Cell, capacity),
		occupied: make(map[Cell]struct{}, capacity),
	}
	b.ring[0] = start
	b.n = 1
	b.occupied[start] = struct{}{}
	return b
}

// Head returns the first cell.
func (b *Body) Head() Cell {
	return b.ring[b.start]
}

// Tail returns the last cell.
func (b *Body) Tail() Cell {
	return b.ring[(b.start+b.n-1)%len(b.ring)]
}

// Len returns the number of cells.
func (b *Body) Len() int {
	return b.n
}

// Cells returns a copy of the body, head first.
func (b *Body) Cells() []Cell {
	out := make([]Cell, b.n)
	for i := 0; i < b.n; i++ {
		out[i] = b.ring[(b.start+i)%len(b.ring)]
	}
	return out
}

// Contains reports whether c is any cell of the body, tail included.
func (b *Body) Contains(c Cell) bool {
	_, ok := b.occupied[c]
	return ok
}

// ContainsExcludingTail reports whether c is a body cell other than the tail.
func (b *Body) ContainsExcludingTail(c Cell) bool {
	return b.Contains(c) && c != b.Tail()
}

// Direction returns the current heading.
func (b *Body) Direction() Direction {
	return b.dir
}

// Growth returns how many upcoming moves will keep the tail.
func (b *Body) Growth() int {
	return b.growth
}

// Grow queues n more moves that keep the tail.
func (b *Body) Grow(n int) {
	if n > 0 {
		b.growth += n
	}
}

// Steer requests a new heading and reports whether it was accepted.
// Only one change is accepted between ticks, and a snake longer than one cell
// cannot reverse onto its own neck. The zero vector never replaces a heading.
func (b *Body) Steer(d Direction) bool {
	if b.steered || d.IsZero() {
		return false
	}
	if b.n > 1 && d == b.dir.Opposite() {
		return false
	}
	b.dir = d
	b.steered = true
	return true
}

// Settle re-opens the steering slot. The engine calls it once per tick.
func (b *Body) Settle() {
	b.steered = false
}

// Advance pushes newHead to the front. While growth is pending the tail is kept
// and growth decrements; otherwise the tail is popped and returned with popped=true.
func (b *Body) Advance(newHead Cell) (removed Cell, popped bool) {
	if b.growth > 0 {
		b.growth--
	} else {
		removed = b.Tail()
		delete(b.occupied, removed)
		b.n--
		popped = true
	}

	b.start = (b.start - 1 + len(b.ring)) % len(b.ring)
	b.ring[b.start] = newHead
	b.n++
	b.occupied[newHead] = struct{}{}
	return removed, popped
}
