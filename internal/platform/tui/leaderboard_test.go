package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

func TestLeaderboardEmpty(t *testing.T) {
	lb := NewLeaderboard()
	if err := lb.Load(nil, "", "local"); err != nil {
		t.Fatalf("Load(nil) failed: %v", err)
	}
	if !strings.Contains(lb.View(), "No rounds finished yet") {
		t.Errorf("View() = %q", lb.View())
	}
}

func TestLeaderboardLoadsTopRounds(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var last storage.Round
	for i := 0; i < leaderboardRows+2; i++ {
		last, err = store.SaveRound(storage.Round{
			Player:    "a-very-long-player-name",
			Score:     i + 1,
			Cause:     "self-collision",
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	lb := NewLeaderboard()
	lb.now = func() time.Time { return now }
	if err := lb.Load(store, last.ID, "a-very-long-player-name"); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	rounds := lb.Rounds()
	if len(rounds) != leaderboardRows {
		t.Fatalf("Rounds() has %d rows, expected %d", len(rounds), leaderboardRows)
	}
	if rounds[0].Score != leaderboardRows+2 {
		t.Errorf("first row score = %d", rounds[0].Score)
	}

	view := lb.View()
	if !strings.Contains(view, "6 hours ago") {
		t.Errorf("View() lacks relative time:\n%s", view)
	}
	if strings.Contains(view, "a-very-long-player-name") {
		t.Errorf("View() did not truncate the player name:\n%s", view)
	}
}

func TestLeaderboardSummary(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Round{
		{Player: "ann", Score: 3, Cause: "wall-collision"},
		{Player: "bo", Score: 10, Cause: "board-full"},
		{Player: "ann", Score: 5, Cause: "self-collision"},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	lb := NewLeaderboard()
	if err := lb.Load(store, "", "ann"); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	view := lb.View()
	for _, want := range []string{"3 rounds", "avg 6.0", "best 10", "board full 1", "ann: best 5 in 2 rounds"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() lacks %q:\n%s", want, view)
		}
	}
}

func TestLeaderboardSummaryNewPlayer(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRound(storage.Round{Player: "ann", Score: 4, Cause: "wall-collision"}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	lb := NewLeaderboard()
	if err := lb.Load(store, "", "cy"); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	view := lb.View()
	if !strings.Contains(view, "1 round ") {
		t.Errorf("View() lacks the singular count:\n%s", view)
	}
	if strings.Contains(view, "cy:") || strings.Contains(view, "board full") {
		t.Errorf("View() shows lines that do not apply:\n%s", view)
	}
}
