package stardrift

import (
	"math"

	"github.com/vovakirdan/stardrift/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar  = '▓'
	ResourceChar  = '●'
	CraftChar     = '█'
	FarStarChar   = '.'
	NearStarChar  = '·'
	MouthOpenChar = ' '
)

// craftNoses maps a heading quadrant to the glyph drawn on the craft's
// leading edge when the mouth is closed: right, down, left, up.
var craftNoses = [4]rune{'▶', '▼', '◀', '▲'}

// viewport maps field coordinates to screen cells inside a border.
type viewport struct {
	ox, oy int
	w, h   int
	sx, sy float64
}

func newViewport(dst *core.Screen, r Rules) viewport {
	w := max(dst.Width()-2, 1)
	h := max(dst.Height()-2, 1)
	return viewport{
		ox: 1,
		oy: 1,
		w:  w,
		h:  h,
		sx: float64(w) / r.FieldW,
		sy: float64(h) / r.FieldH,
	}
}

// cell converts a field point to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	return v.ox + int(math.Floor(x*v.sx)), v.oy + int(math.Floor(y*v.sy))
}

// rect converts a field box to screen cells, at least one cell in each axis.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.cell(b.X, b.Y)
	x1, y1 := v.cell(b.X+b.W, b.Y+b.H)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// inside reports whether a screen cell is within the play area.
func (v viewport) inside(x, y int) bool {
	return x >= v.ox && x < v.ox+v.w && y >= v.oy && y < v.oy+v.h
}

func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if v.inside(x, y) {
				dst.SetColored(x, y, ch, c)
			}
		}
	}
}

// Render draws the field, its contents and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(dst, g.rules)

	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), core.ColorFrame)

	if g.stars != nil {
		for _, st := range g.stars.Stars() {
			x, y := v.cell(st.X, st.Y)
			if !v.inside(x, y) {
				continue
			}
			if st.Near {
				dst.SetColored(x, y, NearStarChar, core.ColorNearStar)
			} else {
				dst.SetColored(x, y, FarStarChar, core.ColorFarStar)
			}
		}
	}

	for _, o := range g.state.Obstacles {
		v.fill(dst, v.rect(o.Box()), ObstacleChar, core.ColorDebris)
	}
	for _, res := range g.state.Resources {
		v.fill(dst, v.rect(res.Box()), ResourceChar, core.ColorResource)
	}

	g.drawCraft(dst, v)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.state.Phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "Game Over!", "Press R to Restart")
	}
}

// drawCraft fills the craft's cells and marks its leading edge.
func (g *Game) drawCraft(dst *core.Screen, v viewport) {
	p := g.state.Player
	r := v.rect(p.Box())
	v.fill(dst, r, CraftChar, core.ColorCraft)

	q := headingQuadrant(p.Heading)
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	switch q {
	case 0:
		cx = r.Right() - 1
	case 1:
		cy = r.Bottom() - 1
	case 2:
		cx = r.X
	case 3:
		cy = r.Y
	}
	if !v.inside(cx, cy) {
		return
	}

	nose := craftNoses[q]
	if g.mouth != nil && g.mouth.Open() {
		nose = MouthOpenChar
	}
	dst.SetColored(cx, cy, nose, core.ColorCraft)
}

// headingQuadrant returns 0 (right), 1 (down), 2 (left) or 3 (up).
func headingQuadrant(heading float64) int {
	q := int(math.Round(heading/(math.Pi/2))) % 4
	if q < 0 {
		q += 4
	}
	return q
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorMessage)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorMessage)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
