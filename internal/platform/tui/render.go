package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kleiner-held/internal/core"
)

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// adaptive picks a shade readable on both light and dark terminals.
func adaptive(light, dark string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: light, Dark: dark})
}

// palette maps every color role to its terminal style (ANSI 256 codes).
var palette = [core.NumColors]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),

	core.ColorCloud:    adaptive("250", "254"),
	core.ColorGrass:    fg("70"),
	core.ColorSoil:     fg("94"),
	core.ColorBird:     adaptive("240", "248"),
	core.ColorTreasure: fg("220").Bold(true),

	core.ColorHero:     fg("45"),
	core.ColorShielded: fg("229").Bold(true),
	core.ColorHurt:     fg("196"),
	core.ColorFallen:   fg("242"),
	core.ColorBlade:    adaptive("244", "255"),
	core.ColorLizard:   fg("34"),
	core.ColorSkeleton: adaptive("245", "252"),
	core.ColorMinotaur: fg("130"),
	core.ColorTroll:    fg("64"),
	core.ColorDragon:   fg("160"),
	core.ColorDemon:    fg("129"),

	core.ColorGold:   fg("220"),
	core.ColorSilver: fg("250"),
	core.ColorCopper: fg("166"),

	core.ColorHUD:        adaptive("235", "255"),
	core.ColorHUDAccent:  fg("214"),
	core.ColorPanel:      fg("214"),
	core.ColorPanelTitle: fg("214").Bold(true),
	core.ColorPanelText:  adaptive("236", "252"),
	core.ColorAlert:      fg("196").Bold(true),
}

func styleFor(c core.Color) lipgloss.Style {
	if c >= core.NumColors {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same role share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			role := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != role {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if role == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(role).Render(run.String()))
		}
	}
	return sb.String()
}
