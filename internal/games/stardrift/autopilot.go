package stardrift

import "math"

const (
	autopilotLookahead = 220.0 // How far ahead debris is considered a threat
	autopilotClearance = 12.0  // Extra vertical gap kept from debris
	autopilotDeadband  = 6.0   // Vertical error tolerated before steering
	autopilotHomeSlack = 30.0  // Horizontal drift tolerated around spawn X
)

// Autopilot picks inputs for an unattended craft: it lines up with the
// nearest resource ahead, sidesteps debris in its lane and drifts back
// toward its spawn column. Used by headless runs and demos.
func Autopilot(s State, r Rules) Input {
	var in Input
	if s.Phase != PhasePlaying {
		return in
	}

	p := s.Player
	cy := p.Y + p.H/2
	targetY := cy

	nearest := math.Inf(1)
	for _, res := range s.Resources {
		if res.X+res.Diameter < p.X {
			continue
		}
		if d := res.X - p.X; d < nearest {
			nearest = d
			targetY = res.Y + res.Diameter/2
		}
	}

	for _, o := range s.Obstacles {
		if o.X+o.Size < p.X || o.X > p.X+p.W+autopilotLookahead {
			continue
		}
		oy := o.Y + o.Size/2
		gap := (o.Size+p.H)/2 + autopilotClearance
		if math.Abs(targetY-oy) >= gap {
			continue
		}
		above := oy - gap
		below := oy + gap
		switch {
		case above-p.H/2 < 0:
			targetY = below
		case below+p.H/2 > r.FieldH:
			targetY = above
		case math.Abs(cy-above) <= math.Abs(cy-below):
			targetY = above
		default:
			targetY = below
		}
		break
	}

	switch {
	case targetY < cy-autopilotDeadband:
		in.Up = true
	case targetY > cy+autopilotDeadband:
		in.Down = true
	}

	switch {
	case p.X > r.StartX+autopilotHomeSlack:
		in.Left = true
	case p.X < r.StartX-autopilotHomeSlack:
		in.Right = true
	}

	return in
}
