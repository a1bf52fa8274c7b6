package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
)

// styleTable holds one prebuilt style per ANSI code. core.Color values
// are the codes themselves, so rendering is a plain index; building the
// table once also keeps concurrent SSH sessions off a shared lazy cache.
var styleTable = func() [256]lipgloss.Style {
	var t [256]lipgloss.Style
	t[core.ColorDefault] = lipgloss.NewStyle()
	for i := 1; i < len(t); i++ {
		t[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i)))
	}
	return t
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleTable[startColor].Render(run.String()))
		}
	}
	return sb.String()
}
