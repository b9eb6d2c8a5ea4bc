package snake

import (
	"fmt"
	"math/rand"
)

// Spawner places fruit on free cells.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner with a deterministic source.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Reseed restarts the random sequence from seed.
func (s *Spawner) Reseed(seed int64) {
	s.rng.Seed(seed)
}

// Spawn picks a uniformly random free cell.
func (s *Spawner) Spawn(free *CellSet) (Cell, error) {
	c, err := free.Sample(s.rng)
	if err != nil {
		return Cell{}, fmt.Errorf("spawn fruit: %w", err)
	}
	return c, nil
}
