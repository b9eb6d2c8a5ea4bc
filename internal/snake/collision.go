package snake

// Cause explains why a simulation stopped running.
type Cause string

const (
	CauseNone      Cause = ""
	CauseWall      Cause = "wall-collision"
	CauseSelf      Cause = "self-collision"
	CauseBoardFull Cause = "board-full"
)

// Collide reports what the head would hit at candidate.
//
// Every body cell counts as occupied, including the tail even when it is about
// to move away this tick. A length-1 snake cannot hit itself.
func Collide(candidate Cell, body *Body, board Board) Cause {
	if !board.InBounds(candidate) {
		return CauseWall
	}
	if body.Len() != 1 && body.Contains(candidate) {
		return CauseSelf
	}
	return CauseNone
}

// IsFatal reports whether moving the head to candidate kills the snake.
func IsFatal(candidate Cell, body *Body, board Board) bool {
	return Collide(candidate, body, board) != CauseNone
}
