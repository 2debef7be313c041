package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kleiner-held/internal/core"
)

func TestPaletteCoversEveryRole(t *testing.T) {
	for c := core.ColorDefault + 1; c < core.NumColors; c++ {
		if _, none := palette[c].GetForeground().(lipgloss.NoColor); none {
			t.Errorf("role %d has no foreground", c)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorGold)
	s.DrawTextColored(0, 1, "HP", core.ColorHUD)
	s.SetColored(7, 1, 'x', core.Color(200))

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d line breaks, expected 1", got)
	}
	for _, want := range []string{"ab", "cd", "HP", "x"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q in %q", want, out)
		}
	}
}
