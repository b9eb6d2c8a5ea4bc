package main

import (
	"errors"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	flagWidth    int
	flagHeight   int
	flagInterval int
	flagGrowth   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a round in this terminal.

The board fills the terminal. --width or --height fixes that side and the\nother one is still fitted.

Controls:
  Arrows/WASD/hjkl - Steer
  P/Esc            - Pause
  R/Enter          - Restart (after the round ends)
  ?                - More keys
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play --width 20 --height 12
  snake play --interval 70 --growth 3
  snake play --seed 42 --log-file /tmp/snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (0 = fit terminal)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (0 = fit terminal)")
	playCmd.Flags().IntVar(&flagInterval, "interval", 0, "Tick interval in milliseconds (0 = config)")
	playCmd.Flags().IntVar(&flagGrowth, "growth", 0, "Cells gained per fruit (0 = config)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyPlayFlags(&cfg)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal, use 'snake replay' for headless runs")
	}

	logger, closer, err := newLogger(cfg, io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(cfg.Storage.DSN)
	if err != nil {
		logger.Warn("could not open round log", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Width:      cfg.Board.Width,
		Height:     cfg.Board.Height,
		CellWidth:  cfg.Board.CellWidth,
		BlinkTicks: cfg.Render.BlinkTicks,
		Interval:   cfg.Tick.Interval(),
		Growth:     cfg.Growth.PerFruit,
		Seed:       cfg.Seed,
		Player:     playerName(),
		Store:      store,
		Logger:     logger,
	})
}

// applyPlayFlags overrides config values with explicitly set play flags.
func applyPlayFlags(cfg *config.Config) {
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	if flagInterval > 0 {
		cfg.Tick.IntervalMS = flagInterval
	}
	if flagGrowth > 0 {
		cfg.Growth.PerFruit = flagGrowth
	}
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
