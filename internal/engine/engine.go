// Package engine runs a Star Drift simulation on the wall clock.
//
// An Engine owns its state in a single goroutine: frame ticks, input changes
// and restart commands are serialized through one select loop, so the
// simulation never runs two ticks at once and never observes a half-applied
// command. Hosts talk to it through SetInput, Restart and State.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/games/stardrift"
)

// MaxFrame caps the Δt fed to a single tick after a stall.
const MaxFrame = 250 * time.Millisecond

const inboxSize = 64

// ErrStopped is returned by queries made after Run has returned.
var ErrStopped = errors.New("engine: stopped")

// Observer receives every emitted snapshot, on the engine goroutine.
// Observers must not block and must not call back into the engine.
type Observer func(core.Snapshot)

// Options configures an Engine.
type Options struct {
	TickRate    int   // Frames per second, default 60
	Seed        int64 // Random source seed for the spawner
	Rules       stardrift.Rules
	Autopilot   bool // Ignore SetInput and steer with stardrift.Autopilot
	AutoRestart bool // Restart immediately after game over
	Logger      *log.Logger

	// Initial replaces the fresh starting state when non-nil.
	Initial *stardrift.State
}

type setInput struct{ in stardrift.Input }

type restart struct{}

type query struct{ reply chan stardrift.State }

// Engine drives one simulation.
type Engine struct {
	inbox     chan any
	done      chan struct{}
	opts      Options
	logger    *log.Logger
	observers []Observer

	state stardrift.State
	input stardrift.Input
	rng   *rand.Rand
	runs  int
}

// New creates an engine. Call Observe before Run.
func New(opts Options) *Engine {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Rules.FieldW == 0 {
		opts.Rules = stardrift.DefaultRules()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	state := stardrift.NewState(opts.Rules)
	if opts.Initial != nil {
		state = opts.Initial.Clone()
	}

	return &Engine{
		inbox:  make(chan any, inboxSize),
		done:   make(chan struct{}),
		opts:   opts,
		logger: logger,
		state:  state,
		rng:    rand.New(rand.NewSource(opts.Seed)),
	}
}

// Observe registers fn to receive snapshots. Not safe once Run has started.
func (e *Engine) Observe(fn Observer) {
	e.observers = append(e.observers, fn)
}

// SetInput replaces the held directions used from the next frame on.
func (e *Engine) SetInput(in stardrift.Input) {
	e.send(setInput{in: in})
}

// Restart asks for a new run. Ignored while a run is in progress.
func (e *Engine) Restart() {
	e.send(restart{})
}

// State returns a copy of the current simulation state.
func (e *Engine) State(ctx context.Context) (stardrift.State, error) {
	reply := make(chan stardrift.State, 1)
	select {
	case e.inbox <- query{reply: reply}:
	case <-e.done:
		return stardrift.State{}, ErrStopped
	case <-ctx.Done():
		return stardrift.State{}, ctx.Err()
	}

	select {
	case s := <-reply:
		return s, nil
	case <-e.done:
		return stardrift.State{}, ErrStopped
	case <-ctx.Done():
		return stardrift.State{}, ctx.Err()
	}
}

// Done is closed when Run returns.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// send queues a command without blocking. When the inbox is full, which
// only happens before Run starts draining it, the command is dropped.
func (e *Engine) send(cmd any) {
	select {
	case e.inbox <- cmd:
	case <-e.done:
	default:
		e.logger.Debug("inbox full, command dropped", "cmd", fmt.Sprintf("%T", cmd))
	}
}

// Run ticks the simulation until ctx is cancelled. The initial snapshot is
// emitted before the first frame.
func (e *Engine) Run(ctx context.Context) error {
	defer close(e.done)

	frame := time.Second / time.Duration(e.opts.TickRate)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	e.logger.Info("engine started", "tick_rate", e.opts.TickRate, "seed", e.opts.Seed, "autopilot", e.opts.Autopilot)
	e.notify([]core.Snapshot{e.state.Snapshot()})

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("engine stopped", "ticks", e.state.Tick, "runs", e.runs)
			return nil
		case cmd := <-e.inbox:
			e.handleCommand(cmd)
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > MaxFrame {
				dt = MaxFrame
			}
			e.tick(dt.Seconds())
		}
	}
}

func (e *Engine) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case setInput:
		e.input = c.in
	case restart:
		e.restart()
	case query:
		c.reply <- e.state.Clone()
	}
}

func (e *Engine) tick(dt float64) {
	in := e.input
	if e.opts.Autopilot {
		in = stardrift.Autopilot(e.state, e.opts.Rules)
	}

	wasPlaying := e.state.Phase == stardrift.PhasePlaying
	var snaps []core.Snapshot
	e.state, snaps = stardrift.Step(e.state, in, dt, e.rng, e.opts.Rules)
	e.notify(snaps)

	if wasPlaying && e.state.Phase == stardrift.PhaseGameOver {
		e.runs++
		e.logger.Debug("run ended", "score", e.state.Score, "level", e.state.Level, "cause", e.state.Cause)
		if e.opts.AutoRestart {
			e.restart()
		}
	}
}

func (e *Engine) restart() {
	var snaps []core.Snapshot
	e.state, snaps = stardrift.Restart(e.state, e.opts.Rules)
	e.notify(snaps)
}

func (e *Engine) notify(snaps []core.Snapshot) {
	for _, snap := range snaps {
		for _, fn := range e.observers {
			fn(snap)
		}
	}
}
