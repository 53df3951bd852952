package stardrift

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Mouth opening in degrees: swings between min and max, open above the midpoint.
const (
	mouthMinDeg    = 15
	mouthMaxDeg    = 45
	mouthOpenDeg   = 30
	mouthHalfCycle = 0.29 // seconds per open or close sweep
)

// mouthAnimation drives the craft's chomping glyph with alternating tweens.
type mouthAnimation struct {
	tween   *gween.Tween
	opening bool
	angle   float32
}

func newMouthAnimation() *mouthAnimation {
	return &mouthAnimation{
		tween:   gween.New(mouthMinDeg, mouthMaxDeg, mouthHalfCycle, ease.InOutSine),
		opening: true,
		angle:   mouthMinDeg,
	}
}

// Update advances the tween and reverses direction at each end.
func (m *mouthAnimation) Update(dt float64) {
	angle, done := m.tween.Update(float32(dt))
	m.angle = angle
	if !done {
		return
	}

	m.opening = !m.opening
	if m.opening {
		m.tween = gween.New(mouthMinDeg, mouthMaxDeg, mouthHalfCycle, ease.InOutSine)
	} else {
		m.tween = gween.New(mouthMaxDeg, mouthMinDeg, mouthHalfCycle, ease.InOutSine)
	}
}

// Open reports whether the mouth is currently drawn open.
func (m *mouthAnimation) Open() bool {
	return m.angle >= mouthOpenDeg
}

// Angle returns the current mouth angle in degrees.
func (m *mouthAnimation) Angle() float64 {
	return float64(m.angle)
}
