// Package replay runs scripted snake rounds headless.
//
// A script fixes the board, the seed and the moves, so a replay always ends in
// the same state. It is the easiest way to reproduce a round outside a terminal.
package replay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/snake"
)

// DefaultMaxTicks bounds scripts that leave max_ticks unset, since an idle
// snake never dies.
const DefaultMaxTicks = 10_000

// ErrInvalidScript is returned for scripts that cannot be replayed.
var ErrInvalidScript = errors.New("replay: invalid script")

// Script is a replayable round.
type Script struct {
	Board struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"board"`
	Seed     int64  `yaml:"seed"`
	Growth   int    `yaml:"growth"`    // 0 = default
	MaxTicks uint64 `yaml:"max_ticks"` // 0 = DefaultMaxTicks
	Moves    []Move `yaml:"moves"`
}

// Move requests a heading once Tick ticks have elapsed, before the next one.
type Move struct {
	Tick uint64 `yaml:"tick"`
	Dir  string `yaml:"dir"`

	dir snake.Direction
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script and checks its moves.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, err
	}

	var last uint64
	for i := range s.Moves {
		m := &s.Moves[i]
		d, err := snake.ParseDirection(m.Dir)
		if err != nil {
			return Script{}, fmt.Errorf("%w: move %d: %w", ErrInvalidScript, i, err)
		}
		if m.Tick < last {
			return Script{}, fmt.Errorf("%w: move %d at tick %d comes after tick %d", ErrInvalidScript, i, m.Tick, last)
		}
		m.dir = d
		last = m.Tick
	}

	if s.MaxTicks == 0 {
		s.MaxTicks = DefaultMaxTicks
	}
	return s, nil
}

// Config returns the simulation configuration of the script.
func (s Script) Config() snake.Config {
	return snake.Config{
		Width:  s.Board.Width,
		Height: s.Board.Height,
		Growth: s.Growth,
		Seed:   s.Seed,
	}
}
