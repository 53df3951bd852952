package stardrift

import (
	"math"

	"github.com/vovakirdan/stardrift/internal/core"
)

// Input is the set of directions held during a tick.
type Input struct {
	Up, Down, Left, Right bool
}

// InputFromFrame extracts held directions from a platform input frame.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Up:    f.Has(core.ActionUp),
		Down:  f.Has(core.ActionDown),
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
	}
}

// Integrate advances the craft by dt seconds: thrust, damping, per-axis speed
// cap, position update and clamping to the field. Heading follows velocity
// only above HeadingThreshold so it does not jitter near rest.
func Integrate(p Player, in Input, dt float64, r Rules) Player {
	if dt <= 0 {
		return p
	}

	thrust := r.Accel * dt
	if in.Left {
		p.VX -= thrust
	}
	if in.Right {
		p.VX += thrust
	}
	if in.Up {
		p.VY -= thrust
	}
	if in.Down {
		p.VY += thrust
	}

	// Damping applies with or without thrust; capped so a long frame
	// brings the craft to rest instead of reversing it.
	decay := math.Min(r.Friction*dt, 1)
	p.VX -= p.VX * decay
	p.VY -= p.VY * decay

	p.VX = core.Clamp(p.VX, -r.MaxSpeed, r.MaxSpeed)
	p.VY = core.Clamp(p.VY, -r.MaxSpeed, r.MaxSpeed)

	p.X = core.Clamp(p.X+p.VX*dt, 0, r.FieldW-p.W)
	p.Y = core.Clamp(p.Y+p.VY*dt, 0, r.FieldH-p.H)

	if math.Hypot(p.VX, p.VY) > r.HeadingThreshold {
		p.Heading = math.Atan2(p.VY, p.VX)
	}

	return p
}
