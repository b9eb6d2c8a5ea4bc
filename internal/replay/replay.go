package replay

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/runner"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Report is the outcome of a replay.
type Report struct {
	Stop      string `yaml:"stop"`
	Ticks     uint64 `yaml:"ticks"`
	State     string `yaml:"state"`
	Cause     string `yaml:"cause,omitempty"`
	Score     int    `yaml:"score"`
	HighScore int    `yaml:"high_score"`
	Fruits    int    `yaml:"fruits"`
	Head      string `yaml:"head"`
	Dir       string `yaml:"dir"`
	Growth    int    `yaml:"growth"`
	Fruit     string `yaml:"fruit,omitempty"`
	Ignored   int    `yaml:"ignored_moves"` // rejected reversals and extra changes within a tick

	Frame string `yaml:"-"`
}

// Run replays the script to the end and reports the final state.
func Run(ctx context.Context, s Script, logger *log.Logger) (Report, error) {
	sim, err := snake.Configure(s.Config())
	if err != nil {
		return Report{}, err
	}

	var (
		r      *runner.Runner
		next   int
		fruits int
	)
	r = runner.New(sim, runner.Options{
		MaxTicks: s.MaxTicks,
		Logger:   logger,
		BeforeTick: func(sim *snake.Simulation) {
			for next < len(s.Moves) && s.Moves[next].Tick <= sim.Ticks() {
				r.Steer(s.Moves[next].dir)
				next++
			}
		},
		AfterTick: func(ev snake.Event, _ *snake.Simulation) {
			if ev == snake.EventAte || ev == snake.EventBoardFull {
				fruits++
			}
		},
	})

	stop, err := r.Run(ctx)
	if err != nil {
		return Report{}, err
	}

	snap := sim.Snapshot()
	rep := Report{
		Stop:      stop.String(),
		Ticks:     snap.Tick,
		State:     string(snap.State),
		Cause:     string(snap.Cause),
		Score:     snap.Score,
		HighScore: snap.HighScore,
		Fruits:    fruits,
		Head:      snap.Head.String(),
		Dir:       snap.Dir.String(),
		Growth:    snap.Growth,
		Ignored:   r.Ignored(),
		Frame:     Frame(sim),
	}
	if snap.HasFruit {
		rep.Fruit = snap.Fruit.String()
	}
	return rep, nil
}

// asciiGlyphs are the plain-text cell glyphs.
var asciiGlyphs = map[snake.Kind]rune{
	snake.KindEmpty:    '.',
	snake.KindHead:     '@',
	snake.KindBody:     'o',
	snake.KindFruit:    '*',
	snake.KindDeadBody: 'x',
}

// Frame draws the board as plain text, one line per row, inside a border.
func Frame(sim *snake.Simulation) string {
	b := sim.Board()
	scr := core.NewScreen(b.Width()+2, b.Height()+2)
	scr.DrawBox(scr.Bounds(), core.ColorDefault)
	for _, c := range b.AllCells() {
		scr.Set(c.Col+1, c.Row+1, asciiGlyphs[sim.Classify(c)])
	}
	return scr.String()
}
