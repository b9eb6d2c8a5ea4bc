// Package runner drives a snake simulation on a clock without a terminal.
package runner

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/snake"
)

// StopReason tells why Run returned.
type StopReason int

const (
	StopTerminal  StopReason = iota // the round ended
	StopTickLimit                   // MaxTicks reached
	StopCanceled                    // context canceled
)

func (r StopReason) String() string {
	switch r {
	case StopTerminal:
		return "terminal"
	case StopTickLimit:
		return "tick-limit"
	case StopCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Options configures a Runner.
type Options struct {
	Interval time.Duration // 0 ticks as fast as possible
	MaxTicks uint64        // 0 means no limit
	Logger   *log.Logger   // nil discards

	// BeforeTick runs on the tick goroutine before pending intents are applied.
	BeforeTick func(s *snake.Simulation)
	// AfterTick runs on the tick goroutine with the event the tick produced.
	AfterTick func(ev snake.Event, s *snake.Simulation)
}

// IntentBuffer is how many direction intents may wait for the next tick.
const IntentBuffer = 4

// Runner owns the simulation's single writer goroutine.
// Steer may be called from any goroutine; Step and Run must not overlap.
type Runner struct {
	sim     *snake.Simulation
	opts    Options
	log     *log.Logger
	intents chan snake.Direction
	ticks   uint64
	ignored int          // rejected by the simulation, tick goroutine only
	dropped atomic.Int64 // queue full, any goroutine
}

// New creates a runner for sim.
func New(sim *snake.Simulation, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		sim:     sim,
		opts:    opts,
		log:     logger,
		intents: make(chan snake.Direction, IntentBuffer),
	}
}

// Simulation returns the driven simulation. Only touch it from hooks or
// while Run is not active.
func (r *Runner) Simulation() *snake.Simulation {
	return r.sim
}

// Ticks returns the number of ticks this runner has performed.
func (r *Runner) Ticks() uint64 {
	return r.ticks
}

// Ignored returns how many intents were dropped or rejected by the simulation.
// Only read it from hooks or while Run is not active.
func (r *Runner) Ignored() int {
	return r.ignored + int(r.dropped.Load())
}

// Steer queues a direction intent for the next tick. It never blocks; it
// reports false when the queue is full and d was dropped.
// Queued intents are applied in order and the simulation decides which one
// becomes the heading for the tick.
func (r *Runner) Steer(d snake.Direction) bool {
	select {
	case r.intents <- d:
		return true
	default:
		r.dropped.Add(1)
		r.log.Debug("intent dropped", "dir", d)
		return false
	}
}

// Step applies the pending intents and advances the simulation by one tick.
func (r *Runner) Step() snake.Event {
	if r.opts.BeforeTick != nil {
		r.opts.BeforeTick(r.sim)
	}

	r.drainIntents()

	ev := r.sim.Tick()
	r.ticks++

	if ev.Terminal() {
		r.log.Debug("round over",
			"event", ev,
			"cause", r.sim.Cause(),
			"score", r.sim.Score(),
			"ticks", r.sim.Ticks(),
		)
	}

	if r.opts.AfterTick != nil {
		r.opts.AfterTick(ev, r.sim)
	}
	return ev
}

// drainIntents applies every queued intent.
func (r *Runner) drainIntents() {
	for {
		select {
		case d := <-r.intents:
			accepted, err := r.sim.Steer(d)
			switch {
			case err != nil:
				r.ignored++
				r.log.Debug("intent rejected", "dir", d, "error", err)
			case !accepted:
				r.ignored++
				r.log.Debug("intent ignored", "dir", d)
			}
		default:
			return
		}
	}
}

// Run ticks until the round ends, MaxTicks is reached or ctx is done.
// The returned error is ctx.Err() for StopCanceled and nil otherwise.
func (r *Runner) Run(ctx context.Context) (StopReason, error) {
	if !r.sim.Alive() {
		return StopTerminal, nil
	}

	var tickC <-chan time.Time
	if r.opts.Interval > 0 {
		ticker := time.NewTicker(r.opts.Interval)
		defer ticker.Stop()
		tickC = ticker.C
	}

	for {
		if r.opts.MaxTicks > 0 && r.ticks >= r.opts.MaxTicks {
			return StopTickLimit, nil
		}

		if tickC != nil {
			select {
			case <-ctx.Done():
				return StopCanceled, ctx.Err()
			case <-tickC:
			}
		} else if err := ctx.Err(); err != nil {
			return StopCanceled, err
		}

		if r.Step().Terminal() {
			return StopTerminal, nil
		}
	}
}
