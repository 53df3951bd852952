package stardrift

import (
	"slices"

	"github.com/vovakirdan/stardrift/internal/core"
)

// Resolve moves every entity by dt, applies collisions and prunes entities
// that left the field. Entities are scanned in reverse index order and
// collision is tested before exit. Snapshots are appended to out after each
// state-affecting event and the extended slice is returned.
func Resolve(s *State, dt float64, r Rules, out []core.Snapshot) []core.Snapshot {
	out = s.resolveObstacles(dt, r, out)
	out = s.resolveResources(dt, r, out)
	return out
}

func (s *State) resolveObstacles(dt float64, r Rules, out []core.Snapshot) []core.Snapshot {
	step := r.ObstacleSpeed(s.Level) * dt
	hitbox := s.Player.Box()

	for i := len(s.Obstacles) - 1; i >= 0; i-- {
		o := &s.Obstacles[i]
		o.X -= step

		if hitbox.Overlaps(o.Box()) && s.endRun(CauseCollision) {
			out = append(out, s.Snapshot())
		}
		if o.X < -o.Size {
			s.Obstacles = slices.Delete(s.Obstacles, i, i+1)
		}
	}
	return out
}

func (s *State) resolveResources(dt float64, r Rules, out []core.Snapshot) []core.Snapshot {
	step := r.ResourceSpeed * dt
	hitbox := s.Player.Box()

	for i := len(s.Resources) - 1; i >= 0; i-- {
		res := &s.Resources[i]
		res.X -= step

		switch {
		case s.Phase == PhaseGameOver:
			// The run ended earlier this tick; nothing scores any more.
			if res.X < -res.Diameter {
				s.Resources = slices.Delete(s.Resources, i, i+1)
			}
		case hitbox.Overlaps(res.Box()):
			s.Resources = slices.Delete(s.Resources, i, i+1)
			out = s.collect(r, out)
		case res.X < -res.Diameter:
			s.Resources = slices.Delete(s.Resources, i, i+1)
			out = s.miss(r, out)
		}
	}
	return out
}

func (s *State) collect(r Rules, out []core.Snapshot) []core.Snapshot {
	s.Score += r.Points
	s.Progress = core.Clamp(s.Progress+r.ProgressStep, 0, r.ProgressMax)
	out = append(out, s.Snapshot())

	if s.Progress >= r.ProgressMax {
		s.Level++
		s.Progress = 0
		out = append(out, s.Snapshot())
	}
	return out
}

func (s *State) miss(r Rules, out []core.Snapshot) []core.Snapshot {
	s.Missed = core.Clamp(s.Missed+1, 0, r.MaxMissed)
	if s.Missed >= r.MaxMissed {
		s.endRun(CauseMissed)
	}
	return append(out, s.Snapshot())
}
