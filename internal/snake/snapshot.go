package snake

// Snapshot captures the observable simulation state for determinism tests and replays.
type Snapshot struct {
	Tick         uint64
	State        State
	Cause        Cause
	Score        int
	HighScore    int
	Head         Cell
	Dir          Direction
	Growth       int
	Fruit        Cell
	HasFruit     bool
	DeadDuration int
	Free         int
}

// Snapshot returns the current snapshot.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:         s.tick,
		State:        s.state,
		Cause:        s.cause,
		Score:        s.body.Len(),
		HighScore:    s.highScore,
		Head:         s.body.Head(),
		Dir:          s.body.Direction(),
		Growth:       s.body.Growth(),
		Fruit:        s.fruit,
		HasFruit:     s.hasFruit,
		DeadDuration: s.deadDuration,
		Free:         s.free.Len(),
	}
}
