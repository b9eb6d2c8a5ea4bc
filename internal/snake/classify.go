package snake

// Kind is what a renderer should draw in a cell.
type Kind int

const (
	KindEmpty Kind = iota
	KindHead
	KindBody
	KindFruit
	KindDeadBody
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindHead:
		return "head"
	case KindBody:
		return "body"
	case KindFruit:
		return "fruit"
	case KindDeadBody:
		return "dead-body"
	default:
		return "unknown"
	}
}

// Classify returns the kind of c. Every snake cell is KindDeadBody once the round
// has ended; cells outside the board are KindEmpty.
func (s *Simulation) Classify(c Cell) Kind {
	if s.body.Contains(c) {
		switch {
		case s.state == StateDead:
			return KindDeadBody
		case c == s.body.Head():
			return KindHead
		default:
			return KindBody
		}
	}
	if s.hasFruit && c == s.fruit {
		return KindFruit
	}
	return KindEmpty
}
