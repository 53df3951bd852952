package stardrift

import "math/rand"

// spawnObstacle appends one debris square at the right edge with a random
// size and vertical offset. It does nothing once the run is over.
func (s *State) spawnObstacle(rng *rand.Rand, r Rules) {
	if s.Phase != PhasePlaying {
		return
	}
	size := uniform(rng, r.ObstacleMinSize, r.ObstacleMaxSize)
	s.Obstacles = append(s.Obstacles, Obstacle{
		X:    r.FieldW,
		Y:    uniform(rng, 0, r.FieldH-size),
		Size: size,
	})
}

// spawnResource appends one resource at the right edge. The whole hitbox
// stays inside the field, so the bottom margin is at least one diameter.
func (s *State) spawnResource(rng *rand.Rand, r Rules) {
	if s.Phase != PhasePlaying {
		return
	}
	s.Resources = append(s.Resources, Resource{
		X:        r.FieldW,
		Y:        uniform(rng, r.ResourceMinY, r.FieldH-max(r.ResourceMargin, r.ResourceDiameter)),
		Diameter: r.ResourceDiameter,
	})
}

// advanceClock runs both spawn timers forward by dt and fires each one once
// per elapsed interval. Timers always advance; spawning is gated on phase.
func (s *State) advanceClock(dt float64, rng *rand.Rand, r Rules) {
	if dt <= 0 {
		return
	}

	s.Clock.Obstacle += dt
	for r.ObstacleInterval > 0 && s.Clock.Obstacle >= r.ObstacleInterval {
		s.Clock.Obstacle -= r.ObstacleInterval
		s.spawnObstacle(rng, r)
	}

	s.Clock.Resource += dt
	for r.ResourceInterval > 0 && s.Clock.Resource >= r.ResourceInterval {
		s.Clock.Resource -= r.ResourceInterval
		s.spawnResource(rng, r)
	}
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
