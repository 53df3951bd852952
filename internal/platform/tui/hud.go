package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/stardrift/internal/core"
)

// hudEaseSeconds is how long the progress bar takes to reach a new value.
const hudEaseSeconds = 0.35

var (
	heartStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	lostHeartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hudLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// HUD renders lives, score, level and the progress meter above the field.
type HUD struct {
	bar         progress.Model
	tween       *gween.Tween
	shown       float64 // Eased bar fill, 0..1
	snap        core.Snapshot
	maxLives    int
	progressMax int
	width       int
}

// NewHUD creates a HUD for the given terminal width.
func NewHUD(width, maxLives, progressMax int) HUD {
	h := HUD{
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
		maxLives:    maxLives,
		progressMax: progressMax,
	}
	h.SetWidth(width)
	return h
}

// SetWidth resizes the progress bar to fit next to the counters.
func (h *HUD) SetWidth(width int) {
	h.width = width
	h.bar.Width = core.Clamp(width/3, 10, 40)
}

// SetSnapshot updates the counters and eases the bar toward the new progress.
func (h *HUD) SetSnapshot(s core.Snapshot) {
	h.snap = s
	target := 0.0
	if h.progressMax > 0 {
		target = float64(s.Progress) / float64(h.progressMax)
	}
	h.tween = gween.New(float32(h.shown), float32(target), hudEaseSeconds, ease.OutQuad)
}

// Update advances the bar animation by dt seconds.
func (h *HUD) Update(dt float64) {
	if h.tween == nil {
		return
	}
	v, done := h.tween.Update(float32(dt))
	h.shown = float64(v)
	if done {
		h.tween = nil
	}
}

// Lives returns the hearts remaining.
func (h HUD) Lives() int {
	return max(h.maxLives-h.snap.Missed, 0)
}

// View renders the HUD line.
func (h HUD) View() string {
	lives := h.Lives()
	hearts := heartStyle.Render(strings.Repeat("♥", lives)) +
		lostHeartStyle.Render(strings.Repeat("♡", h.maxLives-lives))

	counters := fmt.Sprintf("%s %s  %s %s",
		hudLabelStyle.Render("Score"), hudValueStyle.Render(fmt.Sprint(h.snap.Score)),
		hudLabelStyle.Render("Level"), hudValueStyle.Render(fmt.Sprint(h.snap.Level)),
	)

	line := lipgloss.JoinHorizontal(lipgloss.Center,
		" ", hearts, "  ", counters, "  ", h.bar.ViewAs(h.shown),
	)
	return lipgloss.NewStyle().MaxWidth(h.width).Render(line)
}
