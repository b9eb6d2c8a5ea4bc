package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/replay"
)

var flagNoFrame bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a scripted round headless",
	Long: `Run a scripted round without a terminal and print the final state.

A script fixes the board, the seed and the moves. A move is applied once
"tick" ticks have elapsed, before the next tick:

  board:
    width: 10
    height: 6
  seed: 42
  growth: 5
  max_ticks: 200
  moves:
    - {tick: 0, dir: right}
    - {tick: 3, dir: down}
    - {tick: 5, dir: left}

Examples:
  snake replay ./round.yaml
  snake replay ./round.yaml --no-frame --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagNoFrame, "no-frame", false, "Do not print the final board")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg, os.Stderr, "replay")
	if err != nil {
		return err
	}
	defer closer.Close()

	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		script.Seed = flagSeed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := replay.Run(ctx, script, logger)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprint(w, string(out))
	if !flagNoFrame {
		fmt.Fprintln(w, report.Frame)
	}
	return nil
}
