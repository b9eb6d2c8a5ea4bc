package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Layout constants.
const (
	hudRows      = 1 // score line above the board
	borderSize   = 2 // box drawn around the board
	helpRows     = 1 // short help under the board
	minBoardSide = 4 // smallest board derived from a terminal
)

// glyph is how one board cell kind is drawn.
type glyph struct {
	r rune
	c core.Color
}

var glyphs = map[snake.Kind]glyph{
	snake.KindEmpty:    {' ', core.ColorDefault},
	snake.KindHead:     {'█', core.ColorBrightGreen},
	snake.KindBody:     {'█', core.ColorGreen},
	snake.KindFruit:    {'●', core.ColorBrightRed},
	snake.KindDeadBody: {'█', core.ColorGray},
}

// BoardView draws a simulation into a screen buffer.
type BoardView struct {
	CellWidth  int // terminal columns per board cell
	BlinkTicks int // dead snake blinks while DeadDuration is below this
}

// ScreenSize returns the screen needed for a board of w x h cells,
// including the HUD and the border.
func (v BoardView) ScreenSize(w, h int) (cols, rows int) {
	return w*v.CellWidth + borderSize, h + hudRows + borderSize
}

// BoardSizeFor returns the largest board that fits a terminal of cols x rows,
// leaving room for the HUD, the border and the help line.
func (v BoardView) BoardSizeFor(cols, rows int) (w, h int) {
	w = (cols - borderSize) / v.CellWidth
	h = rows - hudRows - borderSize - helpRows
	return max(w, 0), max(h, 0)
}

// Hidden reports whether the dead snake is in the off phase of its blink.
func (v BoardView) Hidden(sim *snake.Simulation) bool {
	d := sim.DeadDuration()
	return !sim.Alive() && d < v.BlinkTicks && d%2 == 1
}

// Draw renders the HUD and the board. status is shown at the right of the HUD.
func (v BoardView) Draw(scr *core.Screen, sim *snake.Simulation, best int, status string) {
	board := sim.Board()
	cols, rows := v.ScreenSize(board.Width(), board.Height())
	if scr.Width() != cols || scr.Height() != rows {
		scr.Resize(cols, rows)
	}
	scr.Clear()

	v.drawHUD(scr, sim, best, status)

	frame := core.NewRect(0, hudRows, cols, board.Height()+borderSize)
	frameColor := core.ColorWhite
	if !sim.Alive() {
		frameColor = core.ColorRed
		if sim.Won() {
			frameColor = core.ColorBrightYellow
		}
	}
	scr.DrawBox(frame, frameColor)

	hidden := v.Hidden(sim)
	for _, cell := range board.AllCells() {
		kind := sim.Classify(cell)
		if hidden && kind == snake.KindDeadBody {
			kind = snake.KindEmpty
		}
		g := glyphs[kind]
		x := frame.X + 1 + cell.Col*v.CellWidth
		y := frame.Y + 1 + cell.Row
		for i := 0; i < v.CellWidth; i++ {
			scr.SetColored(x+i, y, g.r, g.c)
		}
	}
}

func (v BoardView) drawHUD(scr *core.Screen, sim *snake.Simulation, best int, status string) {
	left := fmt.Sprintf("SCORE %d  BEST %d", sim.Score(), max(best, sim.HighScore()))
	scr.DrawText(0, 0, left, core.ColorBrightYellow)

	if status == "" {
		return
	}
	x := scr.Width() - len([]rune(status))
	if x < len(left)+1 {
		return
	}
	color := core.ColorGray
	if !sim.Alive() {
		color = core.ColorBrightRed
	}
	scr.DrawText(x, 0, status, color)
}

// DrawOverlay draws a centered box with the given lines on top of the board.
func DrawOverlay(scr *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := scr.Bounds().Centered(width+4, len(lines)+2)
	scr.DrawRect(box, ' ')
	scr.DrawBox(box, c)
	for i, l := range lines {
		pad := (width - len([]rune(l))) / 2
		scr.DrawText(box.X+2+pad, box.Y+1+i, l, c)
	}
}

// StatusText describes the round for the HUD.
func StatusText(sim *snake.Simulation, paused bool) string {
	switch {
	case sim.Won():
		return "board full"
	case !sim.Alive():
		return strings.ReplaceAll(string(sim.Cause()), "-", " ")
	case paused:
		return "paused"
	case sim.Direction().IsZero():
		return "press an arrow key"
	default:
		return ""
	}
}
