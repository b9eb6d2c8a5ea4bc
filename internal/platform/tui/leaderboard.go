package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/gridsnake/internal/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Leaderboard layout constants
const (
	leaderboardRows = 5  // rounds shown under the board
	playerColWidth  = 12 // truncation width for player names
)

var (
	leaderboardFrame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	leaderboardEmpty = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true)
	leaderboardMuted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
)

// Leaderboard shows the best rounds of this process under the board,
// with totals for the whole log and for the current player.
type Leaderboard struct {
	table  table.Model
	rounds []storage.Round
	stats  storage.Stats
	player string
	mine   []storage.Round // player's rounds, best first
	now    func() time.Time
}

// NewLeaderboard creates an empty leaderboard.
func NewLeaderboard() Leaderboard {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: playerColWidth},
		{Title: "Score", Width: 6},
		{Title: "Ended", Width: 15},
		{Title: "When", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(leaderboardRows+2), // header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Leaderboard{table: t, now: time.Now}
}

// Load refreshes the rows from the store. highlight is the ID of a round to
// select, usually the one just saved. player picks the personal summary.
func (l *Leaderboard) Load(store *storage.Store, highlight, player string) error {
	l.player = player
	if store == nil {
		l.rounds, l.mine, l.stats = nil, nil, storage.Stats{}
		l.updateRows(highlight)
		return nil
	}

	rounds, err := store.TopRounds(leaderboardRows)
	if err != nil {
		return err
	}
	stats, err := store.Stats(string(snake.CauseBoardFull))
	if err != nil {
		return err
	}
	mine, err := store.PlayerRounds(player)
	if err != nil {
		return err
	}

	l.rounds, l.stats, l.mine = rounds, stats, mine
	l.updateRows(highlight)
	return nil
}

// Rounds returns the rows currently shown.
func (l Leaderboard) Rounds() []storage.Round {
	return l.rounds
}

func (l *Leaderboard) updateRows(highlight string) {
	rows := make([]table.Row, len(l.rounds))
	cursor := 0
	for i, r := range l.rounds {
		player := r.Player
		if len([]rune(player)) > playerColWidth {
			player = string([]rune(player)[:playerColWidth-1]) + "."
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			player,
			strconv.Itoa(r.Score),
			r.Cause,
			humanize.RelTime(r.CreatedAt, l.now(), "ago", "from now"),
		}
		if r.ID == highlight {
			cursor = i
		}
	}
	l.table.SetRows(rows)
	l.table.SetCursor(cursor)
}

// View renders the table, or a hint when no round has finished yet.
func (l Leaderboard) View() string {
	if len(l.rounds) == 0 {
		return leaderboardFrame.Render(leaderboardEmpty.Render("No rounds finished yet."))
	}
	title := fmt.Sprintf("Best of %d", len(l.rounds))
	return leaderboardFrame.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		l.table.View(),
		leaderboardMuted.Render(l.summary()),
	))
}

// summary is the totals line under the table.
func (l Leaderboard) summary() string {
	st := l.stats
	line := fmt.Sprintf("%s %s  avg %.1f  best %d",
		humanize.Comma(int64(st.Rounds)), plural(st.Rounds, "round"), st.Average, st.Best)
	if st.Wins > 0 {
		line += fmt.Sprintf("  board full %d", st.Wins)
	}
	if len(l.mine) > 0 {
		line += fmt.Sprintf("\n%s: best %d in %d %s",
			l.player, l.mine[0].Score, len(l.mine), plural(len(l.mine), "round"))
	}
	return line
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
