package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/snake"
)

func newSim(t *testing.T, w, h int) *snake.Simulation {
	t.Helper()
	sim, err := snake.Configure(snake.Config{Width: w, Height: h, Seed: 1})
	if err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	return sim
}

func TestSteerQueueLetsSimulationDecide(t *testing.T) {
	r := New(newSim(t, 5, 5), Options{})

	if !r.Steer(snake.DirUp) || !r.Steer(snake.DirLeft) {
		t.Fatal("Steer() dropped an intent below the queue size")
	}

	r.Step()
	// One change per tick: up is taken, left is rejected.
	if got := r.Simulation().Direction(); got != snake.DirUp {
		t.Errorf("Direction() = %v, expected up", got)
	}
	if r.Ignored() != 1 {
		t.Errorf("Ignored() = %d, expected 1", r.Ignored())
	}
}

func TestSteerDropsWhenQueueFull(t *testing.T) {
	r := New(newSim(t, 5, 5), Options{})

	for i := 0; i < IntentBuffer; i++ {
		if !r.Steer(snake.DirUp) {
			t.Fatalf("Steer() %d dropped", i)
		}
	}
	if r.Steer(snake.DirUp) {
		t.Error("Steer() queued past the buffer")
	}

	r.Step()
	// One drop plus every queued repeat after the accepted one.
	if r.Ignored() != IntentBuffer {
		t.Errorf("Ignored() = %d, expected %d", r.Ignored(), IntentBuffer)
	}
	if !r.Steer(snake.DirLeft) {
		t.Error("Steer() after Step() was dropped")
	}
}

// lengthTwoHeadingRight returns a 9x5 simulation whose snake has two cells
// and heads right. It searches for a seed that drops the first fruit right of
// the start cell.
func lengthTwoHeadingRight(t *testing.T) *snake.Simulation {
	t.Helper()
	for seed := int64(1); seed < 10_000; seed++ {
		sim, err := snake.Configure(snake.Config{Width: 9, Height: 5, Seed: seed})
		if err != nil {
			t.Fatalf("Configure() failed: %v", err)
		}
		fruit, _ := sim.Fruit()
		if fruit != sim.Head().Add(snake.DirRight) {
			continue
		}
		if _, err := sim.Steer(snake.DirRight); err != nil {
			t.Fatalf("Steer() failed: %v", err)
		}
		sim.Tick() // eat
		sim.Tick() // grow to two cells
		if sim.Score() != 2 || sim.Direction() != snake.DirRight {
			t.Fatalf("setup: score %d dir %v", sim.Score(), sim.Direction())
		}
		return sim
	}
	t.Fatal("no seed puts the first fruit next to the start")
	return nil
}

func TestReversalThenTurnInOneTick(t *testing.T) {
	direct := lengthTwoHeadingRight(t)
	if ok, _ := direct.Steer(snake.DirLeft); ok {
		t.Fatal("simulation accepted a reversal")
	}
	if ok, _ := direct.Steer(snake.DirDown); !ok {
		t.Fatal("simulation rejected a turn after a reversal")
	}

	r := New(lengthTwoHeadingRight(t), Options{})
	r.Steer(snake.DirLeft)
	r.Steer(snake.DirDown)
	head := r.Simulation().Head()
	r.Step()

	if got := r.Simulation().Direction(); got != direct.Direction() {
		t.Errorf("runner Direction() = %v, direct Direction() = %v", got, direct.Direction())
	}
	if want := head.Add(snake.DirDown); r.Simulation().Head() != want {
		t.Errorf("Head() = %v, expected %v", r.Simulation().Head(), want)
	}
	if r.Ignored() != 1 {
		t.Errorf("Ignored() = %d, expected the reversal only", r.Ignored())
	}
}

func TestRunStopsAtWall(t *testing.T) {
	// 5 wide, start column 2: two moves right, then the wall.
	r := New(newSim(t, 5, 3), Options{})
	r.Steer(snake.DirRight)

	reason, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if reason != StopTerminal {
		t.Errorf("reason = %v, expected terminal", reason)
	}
	if r.Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", r.Ticks())
	}
	if r.Simulation().Cause() != snake.CauseWall {
		t.Errorf("Cause() = %q, expected wall", r.Simulation().Cause())
	}
}

func TestRunTickLimit(t *testing.T) {
	r := New(newSim(t, 5, 5), Options{MaxTicks: 4})

	reason, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if reason != StopTickLimit {
		t.Errorf("reason = %v, expected tick-limit", reason)
	}
	if r.Ticks() != 4 {
		t.Errorf("Ticks() = %d, expected 4", r.Ticks())
	}
	if !r.Simulation().Alive() {
		t.Error("idle snake died")
	}
}

func TestRunCanceled(t *testing.T) {
	r := New(newSim(t, 5, 5), Options{Interval: time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	reason, err := r.Run(ctx)
	if reason != StopCanceled {
		t.Errorf("reason = %v, expected canceled", reason)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, expected deadline exceeded", err)
	}
}

func TestRunOnDeadSimulation(t *testing.T) {
	r := New(newSim(t, 1, 1), Options{})

	reason, err := r.Run(context.Background())
	if err != nil || reason != StopTerminal {
		t.Errorf("Run() = %v, %v; expected terminal", reason, err)
	}
	if r.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0", r.Ticks())
	}
}

func TestHooks(t *testing.T) {
	var (
		before int
		events []snake.Event
		r      *Runner
	)
	r = New(newSim(t, 5, 3), Options{
		BeforeTick: func(s *snake.Simulation) {
			before++
			if s.Ticks() == 0 {
				r.Steer(snake.DirLeft)
			}
		},
		AfterTick: func(ev snake.Event, _ *snake.Simulation) {
			events = append(events, ev)
		},
	})

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if before != len(events) {
		t.Errorf("BeforeTick ran %d times, AfterTick %d", before, len(events))
	}
	if len(events) == 0 || events[len(events)-1] != snake.EventDied {
		t.Errorf("events = %v, expected to end with died", events)
	}
}

func TestStepRejectedIntentWhileDead(t *testing.T) {
	r := New(newSim(t, 1, 1), Options{})
	r.Steer(snake.DirUp)

	if ev := r.Step(); ev != snake.EventDeadTick {
		t.Errorf("Step() = %v, expected dead-tick", ev)
	}
	if r.Simulation().DeadDuration() != 1 {
		t.Errorf("DeadDuration() = %d, expected 1", r.Simulation().DeadDuration())
	}
}
