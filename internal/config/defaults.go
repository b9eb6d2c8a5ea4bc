package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			CellWidth: 2,
		},
		Tick: TickConfig{
			IntervalMS: 110,
		},
		Growth: GrowthConfig{
			PerFruit: 5,
		},
		Render: RenderConfig{
			BlinkTicks: 6,
		},
		Storage: StorageConfig{
			DSN: ":memory:",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
