// Package config provides YAML-based configuration for the snake hosts.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned by Validate for out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete host configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Tick    TickConfig    `yaml:"tick"`
	Growth  GrowthConfig  `yaml:"growth"`
	Render  RenderConfig  `yaml:"render"`
	Seed    int64         `yaml:"seed"` // 0 = derive from the clock
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig sets the board size. Zero dimensions are derived from the terminal.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	CellWidth int `yaml:"cell_width"` // terminal columns per board cell
}

// TickConfig sets the simulation clock.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// Interval returns the tick period.
func (t TickConfig) Interval() time.Duration {
	return time.Duration(t.IntervalMS) * time.Millisecond
}

// GrowthConfig sets how much one fruit grows the snake.
type GrowthConfig struct {
	PerFruit int `yaml:"per_fruit"`
}

// RenderConfig controls cosmetic rendering.
type RenderConfig struct {
	BlinkTicks int `yaml:"blink_ticks"` // dead snake blinks while dead duration is below this
}

// StorageConfig selects the round log database.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // ":memory:" keeps rounds for the life of the process
}

// SSHConfig configures the remote play server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"` // empty = ~/.snake/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty = stderr for servers, discarded for the TUI
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	switch {
	case c.Board.Width < 0 || c.Board.Height < 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Board.CellWidth < 1:
		return fmt.Errorf("%w: board.cell_width %d", ErrInvalid, c.Board.CellWidth)
	case c.Tick.IntervalMS <= 0:
		return fmt.Errorf("%w: tick.interval_ms %d", ErrInvalid, c.Tick.IntervalMS)
	case c.Growth.PerFruit <= 0:
		return fmt.Errorf("%w: growth.per_fruit %d", ErrInvalid, c.Growth.PerFruit)
	case c.Render.BlinkTicks < 0:
		return fmt.Errorf("%w: render.blink_ticks %d", ErrInvalid, c.Render.BlinkTicks)
	case c.SSH.IdleTimeoutMinutes < 0:
		return fmt.Errorf("%w: ssh.idle_timeout_minutes %d", ErrInvalid, c.SSH.IdleTimeoutMinutes)
	}
	return nil
}
