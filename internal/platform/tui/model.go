package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Defaults used when Options leave a field empty.
const (
	DefaultInterval   = 110 * time.Millisecond
	DefaultCellWidth  = 2
	DefaultBlinkTicks = 6
)

// Options configures a Model.
type Options struct {
	Width      int // 0 fits the terminal; a single zero side is taken from the terminal
	Height     int // 0 fits the terminal
	CellWidth  int
	BlinkTicks int
	Interval   time.Duration
	Growth     int
	Seed       int64 // 0 picks a new seed for every round
	Player     string
	Store      *storage.Store // nil disables the leaderboard
	Logger     *log.Logger    // nil discards
}

func (o Options) withDefaults() Options {
	if o.CellWidth < 1 {
		o.CellWidth = DefaultCellWidth
	}
	if o.BlinkTicks < 0 {
		o.BlinkTicks = 0
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.Player == "" {
		o.Player = "local"
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Model is the Bubble Tea model for one player's rounds.
type Model struct {
	opts   Options
	sim    *snake.Simulation
	view   BoardView
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	board  Leaderboard
	log    *log.Logger

	width    int
	height   int
	best     int
	paused   bool
	tooSmall bool
	quitting bool
}

// NewModel creates a model. With both dimensions fixed the first round is set
// up immediately; otherwise it starts on the first window size message.
func NewModel(opts Options) (Model, error) {
	opts = opts.withDefaults()
	if opts.Width < 0 || opts.Height < 0 {
		return Model{}, fmt.Errorf("tui: %w: board %dx%d", snake.ErrInvalidConfiguration, opts.Width, opts.Height)
	}

	m := Model{
		opts:   opts,
		view:   BoardView{CellWidth: opts.CellWidth, BlinkTicks: opts.BlinkTicks},
		screen: core.NewScreen(0, 0),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		board:  NewLeaderboard(),
		log:    opts.Logger,
	}

	if opts.Store != nil {
		best, err := opts.Store.HighScore()
		if err != nil {
			return Model{}, err
		}
		m.best = best
		if err := m.board.Load(opts.Store, "", opts.Player); err != nil {
			return Model{}, err
		}
	}

	if m.fixedSize() {
		if err := m.configure(opts.Width, opts.Height); err != nil {
			return Model{}, err
		}
	}
	return m, nil
}

// Simulation returns the current simulation, or nil before the first round.
func (m Model) Simulation() *snake.Simulation {
	return m.sim
}

// Paused reports whether the clock is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Best returns the best score known to this model.
func (m Model) Best() int {
	best := m.best
	if m.sim != nil {
		best = max(best, m.sim.HighScore())
	}
	return best
}

func (m Model) fixedSize() bool {
	return m.opts.Width > 0 && m.opts.Height > 0
}

// boardSizeFor returns the board for a terminal of cols x rows: fixed sides
// from the options, the rest fitted. ok is false when it does not fit.
func (m Model) boardSizeFor(cols, rows int) (w, h int, ok bool) {
	w, h = m.view.BoardSizeFor(cols, rows)
	if m.opts.Width > 0 {
		w = m.opts.Width
	} else if w < minBoardSide {
		return w, h, false
	}
	if m.opts.Height > 0 {
		h = m.opts.Height
	} else if h < minBoardSide {
		return w, h, false
	}
	sc, sr := m.view.ScreenSize(w, h)
	return w, h, sc <= cols && sr+helpRows <= rows
}

func (m Model) roundSeed() int64 {
	if m.opts.Seed != 0 {
		return m.opts.Seed
	}
	return time.Now().UnixNano()
}

// configure starts a fresh simulation of w x h cells.
func (m *Model) configure(w, h int) error {
	sim, err := snake.Configure(snake.Config{
		Width:  w,
		Height: h,
		Growth: m.opts.Growth,
		Seed:   m.roundSeed(),
	})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m.sim != nil {
		m.best = max(m.best, m.sim.HighScore())
	}
	m.sim = sim
	m.paused = false
	m.log.Debug("round started", "player", m.opts.Player, "width", w, "height", h, "seed", sim.Seed())
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.sim == nil {
		return m, nil
	}

	if d, ok := m.keys.Direction(msg); ok {
		if m.paused {
			return m, nil
		}
		if _, err := m.sim.Steer(d); err != nil {
			m.log.Debug("direction rejected", "dir", d, "error", err)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		if m.sim.Alive() {
			m.paused = !m.paused
		}

	case key.Matches(msg, m.keys.Restart):
		if !m.sim.Alive() {
			m.sim.Reseed(m.roundSeed())
			m.sim.Reset()
			m.paused = false
			m.log.Debug("round restarted", "player", m.opts.Player, "seed", m.sim.Seed())
		}
	}

	return m, nil
}

// handleResize fits the board to the new window.
// A fitted board that changes size starts a new round.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	w, h, ok := m.boardSizeFor(msg.Width, msg.Height)
	m.tooSmall = !ok
	if !ok || m.fixedSize() {
		return m, nil
	}

	if m.sim != nil && m.sim.Board().Width() == w && m.sim.Board().Height() == h {
		return m, nil
	}
	if err := m.configure(w, h); err != nil {
		m.log.Error("cannot fit board", "width", w, "height", h, "error", err)
		m.tooSmall = true
	}
	return m, nil
}

// handleTick advances the simulation unless the clock is held.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.sim != nil && !m.paused && !m.tooSmall {
		if ev := m.sim.Tick(); ev.Terminal() {
			m.finishRound()
		}
	}
	return m, tickCmd(m.opts.Interval)
}

// finishRound records the round that just ended.
func (m *Model) finishRound() {
	m.best = max(m.best, m.sim.HighScore())
	m.log.Info("round over",
		"player", m.opts.Player,
		"score", m.sim.Score(),
		"cause", m.sim.Cause(),
		"ticks", m.sim.Ticks(),
	)

	if m.opts.Store == nil {
		return
	}

	round, err := m.opts.Store.SaveRound(storage.Round{
		Player: m.opts.Player,
		Score:  m.sim.Score(),
		Cause:  string(m.sim.Cause()),
		Ticks:  m.sim.Ticks(),
		Seed:   m.sim.Seed(),
	})
	if err != nil {
		m.log.Warn("could not save round", "error", err)
		return
	}
	if best, err := m.opts.Store.HighScore(); err == nil {
		m.best = max(m.best, best)
	}
	if err := m.board.Load(m.opts.Store, round.ID, m.opts.Player); err != nil {
		m.log.Warn("could not load leaderboard", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return fmt.Sprintf("Terminal too small (%dx%d).\nEnlarge the window or press q to quit.", m.width, m.height)
	}
	if m.sim == nil {
		return ""
	}

	m.view.Draw(m.screen, m.sim, m.Best(), StatusText(m.sim, m.paused))

	dead := !m.sim.Alive()
	if dead && m.sim.DeadDuration() >= m.opts.BlinkTicks {
		title := "GAME OVER"
		color := core.ColorBrightRed
		if m.sim.Won() {
			title = "BOARD FULL"
			color = core.ColorBrightYellow
		}
		DrawOverlay(m.screen, []string{
			title,
			fmt.Sprintf("length %d", m.sim.Score()),
			"r restart  q quit",
		}, color)
	}

	out := lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), m.help.View(m.keys))
	if !dead || m.opts.Store == nil {
		return out
	}

	lb := m.board.View()
	switch {
	case m.height == 0 || lipgloss.Height(out)+lipgloss.Height(lb) <= m.height:
		return lipgloss.JoinVertical(lipgloss.Left, out, lb)
	case lipgloss.Width(out)+1+lipgloss.Width(lb) <= m.width:
		return lipgloss.JoinHorizontal(lipgloss.Top, out, " ", lb)
	default:
		return out
	}
}

// Run starts a local Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
