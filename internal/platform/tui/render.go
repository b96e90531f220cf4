package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// cellStyle returns the truecolor lipgloss style of a cell.
func cellStyle(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Fg != nil {
		style = style.Foreground(lipgloss.Color(c.Fg.Hex()))
	}
	if c.Bg != nil {
		style = style.Background(lipgloss.Color(c.Bg.Hex()))
	}
	return style
}

func sameColor(a, b *core.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if !sameColor(cell.Fg, start.Fg) || !sameColor(cell.Bg, start.Bg) {
					break
				}
				run.WriteString(cell.Glyph)
				x++
			}

			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
