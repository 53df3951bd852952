package engine

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/games/stardrift"
)

func startEngine(t *testing.T, opts Options) (*Engine, <-chan core.Snapshot, context.CancelFunc) {
	t.Helper()
	opts.Logger = log.New(io.Discard)

	e := New(opts)
	snaps := make(chan core.Snapshot, 256)
	e.Observe(func(s core.Snapshot) {
		select {
		case snaps <- s:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	go e.Run(ctx) //nolint:errcheck
	t.Cleanup(func() {
		cancel()
		<-e.Done()
	})
	return e, snaps, cancel
}

func waitSnapshot(t *testing.T, snaps <-chan core.Snapshot, match func(core.Snapshot) bool) core.Snapshot {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case s := <-snaps:
			if match(s) {
				return s
			}
		case <-timeout:
			t.Fatalf("timed out waiting for snapshot")
		}
	}
}

// collidingState is a fresh run with debris already on top of the craft.
func collidingState() *stardrift.State {
	s := stardrift.NewState(stardrift.DefaultRules())
	s.Score = 40
	s.Obstacles = []stardrift.Obstacle{{X: 135, Y: 190, Size: 30}}
	return &s
}

func TestEngineEmitsInitialSnapshot(t *testing.T) {
	_, snaps, _ := startEngine(t, Options{Seed: 1})

	got := waitSnapshot(t, snaps, func(core.Snapshot) bool { return true })
	want := core.Snapshot{Level: 1}
	if got != want {
		t.Errorf("first snapshot = %+v, want %+v", got, want)
	}
}

func TestEngineStopsOnCancel(t *testing.T) {
	e, _, cancel := startEngine(t, Options{Seed: 1})

	cancel()
	select {
	case <-e.Done():
	case <-time.After(time.Second):
		t.Fatalf("engine did not stop")
	}

	if _, err := e.State(context.Background()); !errors.Is(err, ErrStopped) {
		t.Errorf("State() after stop: err = %v, want ErrStopped", err)
	}

	// Commands after stop must not block.
	e.SetInput(stardrift.Input{Up: true})
	e.Restart()
}

func TestEngineCommandsBeforeRunDoNotBlock(t *testing.T) {
	e := New(Options{Seed: 1, Logger: log.New(io.Discard)})

	sent := make(chan struct{})
	go func() {
		for i := 0; i < inboxSize*3; i++ {
			e.SetInput(stardrift.Input{Right: true})
			e.Restart()
		}
		close(sent)
	}()

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatalf("SetInput blocked before Run")
	}

	ctx, cancel := context.WithCancel(context.Background())
	go e.Run(ctx) //nolint:errcheck
	t.Cleanup(func() {
		cancel()
		<-e.Done()
	})

	time.Sleep(200 * time.Millisecond)
	s, err := e.State(context.Background())
	if err != nil {
		t.Fatalf("State() failed: %v", err)
	}
	if s.Player.X <= 100 {
		t.Errorf("Player.X = %v, want > 100 from queued input", s.Player.X)
	}
}

func TestEngineAppliesInput(t *testing.T) {
	e, _, _ := startEngine(t, Options{Seed: 1})

	e.SetInput(stardrift.Input{Right: true})
	time.Sleep(200 * time.Millisecond)

	s, err := e.State(context.Background())
	if err != nil {
		t.Fatalf("State() failed: %v", err)
	}
	if s.Player.X <= 100 {
		t.Errorf("Player.X = %v, want > 100 after holding right", s.Player.X)
	}
	if s.Tick == 0 {
		t.Errorf("no frames ran")
	}
}

func TestEngineGameOverAndRestart(t *testing.T) {
	e, snaps, _ := startEngine(t, Options{Seed: 1, Initial: collidingState()})

	over := waitSnapshot(t, snaps, func(s core.Snapshot) bool { return s.GameOver })
	if over.Score != 40 {
		t.Errorf("game over score = %d, want 40", over.Score)
	}

	e.Restart()
	fresh := waitSnapshot(t, snaps, func(s core.Snapshot) bool { return !s.GameOver })
	if fresh != (core.Snapshot{Level: 1}) {
		t.Errorf("restart snapshot = %+v", fresh)
	}

	s, err := e.State(context.Background())
	if err != nil {
		t.Fatalf("State() failed: %v", err)
	}
	if s.Phase != stardrift.PhasePlaying || len(s.Obstacles) > 1 {
		t.Errorf("state after restart: phase %v, %d obstacles", s.Phase, len(s.Obstacles))
	}
}

func TestEngineAutoRestart(t *testing.T) {
	_, snaps, _ := startEngine(t, Options{Seed: 1, Initial: collidingState(), AutoRestart: true})

	waitSnapshot(t, snaps, func(s core.Snapshot) bool { return s.GameOver })
	fresh := waitSnapshot(t, snaps, func(core.Snapshot) bool { return true })
	if fresh != (core.Snapshot{Level: 1}) {
		t.Errorf("snapshot after auto restart = %+v", fresh)
	}
}

func TestEngineAutopilotFlies(t *testing.T) {
	e, _, _ := startEngine(t, Options{Seed: 3, TickRate: 120, Autopilot: true})

	// Input from the host is ignored under autopilot.
	e.SetInput(stardrift.Input{Right: true})
	time.Sleep(150 * time.Millisecond)

	s, err := e.State(context.Background())
	if err != nil {
		t.Fatalf("State() failed: %v", err)
	}
	if s.Player.X != 100 {
		t.Errorf("Player.X = %v, autopilot should hold the spawn column when idle", s.Player.X)
	}
}
