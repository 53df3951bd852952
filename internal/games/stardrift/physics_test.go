package stardrift

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func restingPlayer(r Rules) Player {
	return spawnPlayer(r)
}

func TestIntegrateThrustAndDamping(t *testing.T) {
	r := DefaultRules()
	p := restingPlayer(r)

	got := Integrate(p, Input{Right: true}, 1.0/60, r)

	// 900/60 = 15 of thrust, then 10% damping.
	if !almostEqual(got.VX, 13.5) {
		t.Errorf("VX = %v, want 13.5", got.VX)
	}
	if !almostEqual(got.X, 100+13.5/60) {
		t.Errorf("X = %v, want %v", got.X, 100+13.5/60)
	}
	if got.VY != 0 || got.Y != p.Y {
		t.Errorf("vertical axis changed: VY=%v Y=%v", got.VY, got.Y)
	}
	if got.Heading != 0 {
		t.Errorf("Heading = %v, want 0", got.Heading)
	}
}

func TestIntegrateOpposingInputsCancel(t *testing.T) {
	r := DefaultRules()
	p := restingPlayer(r)

	got := Integrate(p, Input{Left: true, Right: true, Up: true, Down: true}, 1.0/60, r)
	if got.VX != 0 || got.VY != 0 {
		t.Errorf("velocity = (%v, %v), want (0, 0)", got.VX, got.VY)
	}
}

func TestIntegrateSpeedCap(t *testing.T) {
	r := DefaultRules()
	p := restingPlayer(r)
	p.VX = 1000
	p.VY = -1000

	got := Integrate(p, Input{}, 0.01, r)
	if got.VX != r.MaxSpeed {
		t.Errorf("VX = %v, want %v", got.VX, r.MaxSpeed)
	}
	if got.VY != -r.MaxSpeed {
		t.Errorf("VY = %v, want %v", got.VY, -r.MaxSpeed)
	}
	if !almostEqual(got.X, p.X+3.8) {
		t.Errorf("X = %v, want %v", got.X, p.X+3.8)
	}
}

func TestIntegrateClampsToField(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		name  string
		x, y  float64
		vx    float64
		vy    float64
		wantX float64
		wantY float64
	}{
		{"left edge", 5, 100, -300, 0, 0, 100},
		{"right edge", 755, 100, 300, 0, r.FieldW - r.PlayerW, 100},
		{"top edge", 100, 3, 0, -300, 100, 0},
		{"bottom edge", 100, 355, 0, 300, 100, r.FieldH - r.PlayerH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := restingPlayer(r)
			p.X, p.Y, p.VX, p.VY = tt.x, tt.y, tt.vx, tt.vy

			got := Integrate(p, Input{}, 0.1, r)
			if !almostEqual(got.X, tt.wantX) || !almostEqual(got.Y, tt.wantY) {
				t.Errorf("position = (%v, %v), want (%v, %v)", got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestIntegrateHeading(t *testing.T) {
	r := DefaultRules()

	t.Run("retained when slow", func(t *testing.T) {
		p := restingPlayer(r)
		p.Heading = 1.0
		p.VX = 5

		got := Integrate(p, Input{}, 1.0/60, r)
		if got.Heading != 1.0 {
			t.Errorf("Heading = %v, want 1.0", got.Heading)
		}
	})

	t.Run("follows velocity when fast", func(t *testing.T) {
		p := restingPlayer(r)
		p.VY = 200

		got := Integrate(p, Input{}, 1.0/60, r)
		if !almostEqual(got.Heading, math.Pi/2) {
			t.Errorf("Heading = %v, want %v", got.Heading, math.Pi/2)
		}
	})
}

func TestIntegrateLongFrameComesToRest(t *testing.T) {
	r := DefaultRules()
	p := restingPlayer(r)
	p.VX = 100

	got := Integrate(p, Input{}, 1, r)
	if got.VX != 0 {
		t.Errorf("VX = %v, want 0", got.VX)
	}
}

func TestIntegrateNonPositiveDelta(t *testing.T) {
	r := DefaultRules()
	p := restingPlayer(r)
	p.VX = 50

	for _, dt := range []float64{0, -0.5} {
		if got := Integrate(p, Input{Right: true}, dt, r); got != p {
			t.Errorf("Integrate(dt=%v) = %+v, want unchanged", dt, got)
		}
	}
}

func TestIntegrateStaysInBounds(t *testing.T) {
	r := DefaultRules()
	rng := rand.New(rand.NewSource(7))
	p := restingPlayer(r)

	for i := 0; i < 10000; i++ {
		in := Input{
			Up:    rng.Intn(2) == 0,
			Down:  rng.Intn(3) == 0,
			Left:  rng.Intn(2) == 0,
			Right: rng.Intn(3) == 0,
		}
		dt := rng.Float64() / 20
		p = Integrate(p, in, dt, r)

		if p.X < 0 || p.X > r.FieldW-p.W+eps || p.Y < 0 || p.Y > r.FieldH-p.H+eps {
			t.Fatalf("step %d: position out of field: (%v, %v)", i, p.X, p.Y)
		}
		if math.Abs(p.VX) > r.MaxSpeed || math.Abs(p.VY) > r.MaxSpeed {
			t.Fatalf("step %d: velocity over cap: (%v, %v)", i, p.VX, p.VY)
		}
	}
}
