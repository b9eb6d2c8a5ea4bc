package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/config"
)

const wallScript = `
board:
  width: 5
  height: 3
seed: 1
moves:
  - {tick: 0, dir: right}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagConfig, flagLogLevel, flagLogFile = "", "", ""
		flagNoFrame, flagDefaults = false, false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReplayCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.yaml")
	if err := os.WriteFile(path, []byte(wallScript), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	out, err := execute(t, "replay", path, "--log-level", "warn")
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !strings.Contains(out, "cause: wall-collision") {
		t.Errorf("replay output lacks the cause:\n%s", out)
	}
	if !strings.Contains(out, "┌─────┐") {
		t.Errorf("replay output lacks the frame:\n%s", out)
	}
}

func TestReplayCommandReturnsErrors(t *testing.T) {
	_, err := execute(t, "replay", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("replay of a missing script succeeded")
	}
	if !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("error = %v, expected the script path", err)
	}
}

func TestConfigCommandDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	if err != nil {
		t.Fatalf("config --defaults failed: %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Errorf("config --defaults printed:\n%s", out)
	}
}

func TestNewLoggerFileIsClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	cfg := config.Default()
	cfg.Log.File = path

	logger, closer, err := newLogger(cfg, nil, "test")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("round over", "score", 7)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "round over") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "loud"
	if _, _, err := newLogger(cfg, nil, "test"); err == nil {
		t.Error("newLogger() accepted an unknown level")
	}
}
