package stardrift

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/stardrift/internal/core"
)

func TestRestartFromGameOver(t *testing.T) {
	r := DefaultRules()
	s := NewState(r)
	s.Score = 120
	s.Level = 3
	s.Progress = 40
	s.Missed = 2
	s.Phase = PhaseGameOver
	s.Cause = CauseCollision
	s.Player.X, s.Player.Y = 400, 50
	s.Player.VX, s.Player.VY = 120, -80
	s.Obstacles = []Obstacle{{X: 300, Y: 100, Size: 30}}
	s.Resources = []Resource{{X: 200, Y: 100, Diameter: 18}}
	s.Clock = SpawnClock{Obstacle: 0.3, Resource: 1.1}

	next, snaps := Restart(s, r)

	want := []core.Snapshot{{Score: 0, Level: 1, Progress: 0, Missed: 0, GameOver: false}}
	if !reflect.DeepEqual(snaps, want) {
		t.Errorf("snapshots = %+v, want %+v", snaps, want)
	}
	if len(next.Obstacles) != 0 || len(next.Resources) != 0 {
		t.Errorf("entities not cleared")
	}
	if next.Player != spawnPlayer(r) {
		t.Errorf("player = %+v, want %+v", next.Player, spawnPlayer(r))
	}
	if next.Phase != PhasePlaying || next.Cause != CauseNone {
		t.Errorf("phase = %v cause = %q", next.Phase, next.Cause)
	}
	if next.Clock != s.Clock {
		t.Errorf("clock = %+v, want %+v", next.Clock, s.Clock)
	}
}

func TestRestartWhilePlayingIsNoop(t *testing.T) {
	r := DefaultRules()
	s := NewState(r)
	s.Score = 30
	s.Resources = []Resource{{X: 200, Y: 100, Diameter: 18}}

	next, snaps := Restart(s, r)

	if snaps != nil {
		t.Errorf("snapshots = %+v, want none", snaps)
	}
	if !reflect.DeepEqual(next, s) {
		t.Errorf("state changed: %+v", next)
	}
}

func TestStepDoesNotModifyPrevious(t *testing.T) {
	r := DefaultRules()
	s := NewState(r)
	s.Obstacles = []Obstacle{{X: 500, Y: 10, Size: 30}}
	s.Resources = []Resource{{X: 600, Y: 300, Diameter: 18}}

	Step(s, Input{Right: true}, frame, rand.New(rand.NewSource(1)), r)

	if s.Obstacles[0].X != 500 || s.Resources[0].X != 600 {
		t.Errorf("previous state modified: %+v %+v", s.Obstacles, s.Resources)
	}
	if s.Player != spawnPlayer(r) {
		t.Errorf("previous player modified: %+v", s.Player)
	}
}

func TestStepInertAfterGameOver(t *testing.T) {
	r := DefaultRules()
	s := NewState(r)
	s.Phase = PhaseGameOver
	s.Player.VX = 200
	s.Obstacles = []Obstacle{{X: 500, Y: 10, Size: 30}}

	next, snaps := Step(s, Input{Up: true}, frame, rand.New(rand.NewSource(1)), r)

	if snaps != nil {
		t.Errorf("snapshots = %+v, want none", snaps)
	}
	if next.Player != s.Player {
		t.Errorf("player moved during game over: %+v", next.Player)
	}
	if next.Obstacles[0] != s.Obstacles[0] {
		t.Errorf("obstacle moved during game over: %+v", next.Obstacles[0])
	}
}

func TestStepZeroDelta(t *testing.T) {
	r := DefaultRules()
	s := NewState(r)
	s.Resources = []Resource{overlappingResource()}

	next, snaps := Step(s, Input{Right: true}, 0, rand.New(rand.NewSource(1)), r)

	if snaps != nil || next.Score != 0 || next.Player != s.Player {
		t.Errorf("zero delta changed the run: %+v", next)
	}
	if next.Tick != s.Tick+1 {
		t.Errorf("Tick = %d, want %d", next.Tick, s.Tick+1)
	}
}

func TestStepDeterminism(t *testing.T) {
	r := DefaultRules()

	run := func() State {
		rng := rand.New(rand.NewSource(12345))
		s := NewState(r)
		for i := 0; i < 3000; i++ {
			s, _ = Step(s, Autopilot(s, r), frame, rng, r)
			if s.Phase == PhaseGameOver {
				s, _ = Restart(s, r)
			}
		}
		return s
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
}

func TestStepKeepsStateInBounds(t *testing.T) {
	r := DefaultRules()
	rng := rand.New(rand.NewSource(99))
	inputs := rand.New(rand.NewSource(100))
	s := NewState(r)

	restarts := 0
	for i := 0; i < 20000; i++ {
		in := Input{
			Up:    inputs.Intn(2) == 0,
			Down:  inputs.Intn(2) == 0,
			Left:  inputs.Intn(2) == 0,
			Right: inputs.Intn(2) == 0,
		}
		prevScore := s.Score
		var snaps []core.Snapshot
		s, snaps = Step(s, in, frame, rng, r)

		if s.Score < prevScore {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prevScore, s.Score)
		}
		if s.Progress < 0 || s.Progress > r.ProgressMax {
			t.Fatalf("tick %d: progress %d out of range", i, s.Progress)
		}
		if s.Missed < 0 || s.Missed > r.MaxMissed {
			t.Fatalf("tick %d: missed %d out of range", i, s.Missed)
		}
		if s.Missed == r.MaxMissed && s.Phase != PhaseGameOver {
			t.Fatalf("tick %d: miss limit reached while playing", i)
		}
		p := s.Player
		if p.X < 0 || p.X > r.FieldW-p.W || p.Y < 0 || p.Y > r.FieldH-p.H {
			t.Fatalf("tick %d: player out of field: %+v", i, p)
		}
		for _, o := range s.Obstacles {
			if o.X < -o.Size || o.X > r.FieldW {
				t.Fatalf("tick %d: obstacle outside field: %+v", i, o)
			}
		}
		for _, res := range s.Resources {
			if res.X < -res.Diameter || res.X > r.FieldW {
				t.Fatalf("tick %d: resource outside field: %+v", i, res)
			}
		}
		for _, snap := range snaps {
			if snap.Score%r.Points != 0 {
				t.Fatalf("tick %d: snapshot score %d", i, snap.Score)
			}
		}

		if s.Phase == PhaseGameOver {
			restarts++
			s, _ = Restart(s, r)
		}
	}

	if restarts == 0 {
		t.Errorf("random flight never ended a run in 20000 ticks")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhasePlaying, "playing"},
		{PhaseGameOver, "game_over"},
		{Phase(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
