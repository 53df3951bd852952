package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/stardrift/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	got := RenderScreen(s)
	want := "ab  \n cd "
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenColored(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.SetColored(1, 0, '#', core.ColorDebris)
	s.SetColored(2, 0, '#', core.ColorDebris)

	got := RenderScreen(s)
	if !strings.Contains(got, "##") {
		t.Errorf("same-colored cells split: %q", got)
	}
	if !strings.HasPrefix(got, " ") || !strings.HasSuffix(got, "  ") {
		t.Errorf("default cells styled: %q", got)
	}
}
