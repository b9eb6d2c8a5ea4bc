package snake

import (
	"errors"
	"fmt"
)

// DefaultGrowth is how many extra cells one fruit adds.
const DefaultGrowth = 5

// State is the tick engine's state.
type State string

const (
	StateRunning State = "running"
	StateDead    State = "dead"
)

// Event describes the outcome of one Tick.
type Event int

const (
	EventIdle      Event = iota // no heading yet, nothing moved
	EventMoved                  // head advanced
	EventAte                    // head advanced onto the fruit
	EventDied                   // head hit a wall or the body
	EventBoardFull              // fruit eaten with no cell left for the next one
	EventDeadTick               // already dead, dead duration advanced
)

func (e Event) String() string {
	switch e {
	case EventIdle:
		return "idle"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventDied:
		return "died"
	case EventBoardFull:
		return "board-full"
	case EventDeadTick:
		return "dead-tick"
	default:
		return "unknown"
	}
}

// Terminal reports whether the event ended the round.
func (e Event) Terminal() bool {
	return e == EventDied || e == EventBoardFull
}

// Config holds the parameters fixed for the lifetime of a Simulation.
type Config struct {
	Width  int
	Height int
	Growth int   // cells added per fruit; 0 means DefaultGrowth
	Seed   int64 // fruit placement seed
}

// Simulation is the complete state of one snake game.
// It is not safe for concurrent use; a single goroutine must own it.
type Simulation struct {
	board   Board
	growth  int
	seed    int64
	spawner *Spawner

	body     *Body
	free     *CellSet
	fruit    Cell
	hasFruit bool

	state        State
	cause        Cause
	tick         uint64
	deadDuration int
	highScore    int
}

// Configure creates a simulation and resets it to its starting position.
func Configure(cfg Config) (*Simulation, error) {
	board, err := NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	growth := cfg.Growth
	if growth < 0 {
		return nil, fmt.Errorf("%w: growth %d", ErrInvalidConfiguration, growth)
	}
	if growth == 0 {
		growth = DefaultGrowth
	}

	s := &Simulation{
		board:   board,
		growth:  growth,
		seed:    cfg.Seed,
		spawner: NewSpawner(cfg.Seed),
	}
	s.Reset()
	return s, nil
}

// Reset starts a new round: a single cell at the board center, no heading, no
// pending growth, a fresh fruit. The high score survives.
// Two consecutive resets leave identical state.
func (s *Simulation) Reset() {
	start := s.board.InitialCell()

	s.body = NewBody(start, s.board.Size())
	s.free = NewCellSet(s.board.AllCells())
	s.free.Remove(start)

	s.state = StateRunning
	s.cause = CauseNone
	s.tick = 0
	s.deadDuration = 0

	s.spawner.Reseed(s.seed)
	s.placeFruit()
}

// Reseed changes the fruit seed used by the next Reset.
func (s *Simulation) Reseed(seed int64) {
	s.seed = seed
}

// placeFruit spawns a fruit and ends the round as a win if none fits.
func (s *Simulation) placeFruit() bool {
	fruit, err := s.spawner.Spawn(s.free)
	if errors.Is(err, ErrEmptyBoard) {
		s.fruit = Cell{}
		s.hasFruit = false
		s.finish(CauseBoardFull)
		return false
	}
	s.fruit = fruit
	s.hasFruit = true
	return true
}

// finish moves the simulation into the dead state.
func (s *Simulation) finish(cause Cause) {
	s.state = StateDead
	s.cause = cause
	s.deadDuration = 0
	s.highScore = max(s.highScore, s.body.Len())
}

// Tick advances the simulation by one step.
func (s *Simulation) Tick() Event {
	s.tick++
	defer s.body.Settle()

	if s.state == StateDead {
		s.deadDuration++
		return EventDeadTick
	}

	dir := s.body.Direction()
	if dir.IsZero() {
		return EventIdle
	}

	candidate := s.body.Head().Add(dir)
	if cause := Collide(candidate, s.body, s.board); cause != CauseNone {
		s.finish(cause)
		return EventDied
	}

	removed, popped := s.body.Advance(candidate)
	s.free.Remove(candidate)
	if popped {
		s.free.Add(removed)
	}

	if !s.hasFruit || candidate != s.fruit {
		return EventMoved
	}

	s.body.Grow(s.growth)
	if !s.placeFruit() {
		return EventBoardFull
	}
	return EventAte
}

// SetDirection requests a new heading given as (row delta, column delta) and
// reports whether it was accepted. Reversals of a snake longer than one cell and
// a second change within the same tick are rejected without error.
func (s *Simulation) SetDirection(dRow, dCol int) (bool, error) {
	d, err := NewDirection(dRow, dCol)
	if err != nil {
		return false, err
	}
	return s.Steer(d)
}

// Steer is SetDirection for an already validated Direction.
func (s *Simulation) Steer(d Direction) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("%w: %s", ErrInvalidDirection, d)
	}
	if s.state != StateRunning {
		return false, ErrNotRunning
	}
	return s.body.Steer(d), nil
}

// Board returns the board geometry.
func (s *Simulation) Board() Board { return s.board }

// State returns the engine state.
func (s *Simulation) State() State { return s.state }

// Alive reports whether the snake is still running.
func (s *Simulation) Alive() bool { return s.state == StateRunning }

// Cause returns why the round ended, or CauseNone while running.
func (s *Simulation) Cause() Cause { return s.cause }

// Won reports whether the round ended by filling the board.
func (s *Simulation) Won() bool { return s.cause == CauseBoardFull }

// Score returns the current snake length.
func (s *Simulation) Score() int { return s.body.Len() }

// HighScore returns the longest snake reached at the end of any round so far.
func (s *Simulation) HighScore() int { return s.highScore }

// DeadDuration returns the number of ticks since the snake died.
func (s *Simulation) DeadDuration() int { return s.deadDuration }

// Ticks returns the number of ticks since the last reset.
func (s *Simulation) Ticks() uint64 { return s.tick }

// Direction returns the current heading.
func (s *Simulation) Direction() Direction { return s.body.Direction() }

// Growth returns the number of pending tail-keeping moves.
func (s *Simulation) Growth() int { return s.body.Growth() }

// GrowthPerFruit returns the configured growth increment.
func (s *Simulation) GrowthPerFruit() int { return s.growth }

// Seed returns the seed the next Reset will use.
func (s *Simulation) Seed() int64 { return s.seed }

// Fruit returns the fruit cell and whether one is on the board.
func (s *Simulation) Fruit() (Cell, bool) { return s.fruit, s.hasFruit }

// Head returns the head cell.
func (s *Simulation) Head() Cell { return s.body.Head() }

// Body returns the snake cells, head first.
func (s *Simulation) Body() []Cell { return s.body.Cells() }

// Free returns the number of cells not covered by the snake.
func (s *Simulation) Free() int { return s.free.Len() }
