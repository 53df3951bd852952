package stardrift

import "math/rand"

const (
	starCount     = 120
	nearStarSpeed = 70.0
	farStarSpeed  = 40.0
)

// Star is a single background star. Near stars drift faster.
type Star struct {
	X, Y float64
	Near bool
}

// Starfield is the parallax background. It is visual only and keeps
// scrolling whether or not a run is in progress.
type Starfield struct {
	stars []Star
	w, h  float64
	rng   *rand.Rand
}

// NewStarfield scatters stars uniformly over a w×h field.
func NewStarfield(seed int64, w, h float64) *Starfield {
	sf := &Starfield{
		stars: make([]Star, starCount),
		w:     w,
		h:     h,
		rng:   rand.New(rand.NewSource(seed)),
	}
	for i := range sf.stars {
		sf.stars[i] = Star{
			X:    sf.rng.Float64() * w,
			Y:    sf.rng.Float64() * h,
			Near: sf.rng.Intn(2) == 1,
		}
	}
	return sf
}

// Update scrolls every star left, wrapping to the right edge at a new height.
func (sf *Starfield) Update(dt float64) {
	for i := range sf.stars {
		st := &sf.stars[i]
		if st.Near {
			st.X -= nearStarSpeed * dt
		} else {
			st.X -= farStarSpeed * dt
		}
		if st.X < -2 {
			st.X = sf.w + 2
			st.Y = sf.rng.Float64() * sf.h
		}
	}
}

// Stars returns the current stars. The slice must not be modified.
func (sf *Starfield) Stars() []Star {
	return sf.stars
}
