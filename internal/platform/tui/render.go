package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stardrift/internal/core"
)

// palette holds the ANSI 256-color code for each core.Color.
// An empty entry renders with the terminal's default foreground.
var palette = [...]string{
	core.ColorDefault:  "",
	core.ColorFarStar:  "240",
	core.ColorNearStar: "252",
	core.ColorDebris:   "196",
	core.ColorResource: "46",
	core.ColorCraft:    "226",
	core.ColorFrame:    "62",
	core.ColorMessage:  "212",
}

var colorStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		styles[i] = lipgloss.NewStyle()
		if c != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(c))
		}
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence and cells in
// the default color are written bare.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if color == core.ColorDefault || int(color) >= len(colorStyles) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(colorStyles[color].Render(run.String()))
		}
	}
	return sb.String()
}
