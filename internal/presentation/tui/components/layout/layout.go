// Package layout stacks the banner, content and footer bands into one frame.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/textutil"
)

// Props defines the properties for the layout component.
type Props struct {
	Banner string
	Main   string
	Footer string
	// Height clips the frame to the terminal; zero disables clipping.
	Height int
	Width  int
}

// Render renders the layout component. An empty main band takes no rows,
// and when the frame is taller than Height the footer stays on the last row.
func Render(p Props) string {
	footer := footerLine(p.Footer, p.Width)

	bands := []string{p.Banner}
	if p.Main != "" {
		bands = append(bands, p.Main)
	}
	bands = append(bands, footer)
	frame := lipgloss.JoinVertical(lipgloss.Left, bands...)
	if p.Height <= 0 {
		return frame
	}

	lines := strings.Split(frame, "\n")
	if len(lines) <= p.Height {
		return frame
	}
	footerRow := lines[len(lines)-1]
	lines = append(lines[:p.Height-1], footerRow)
	return strings.Join(lines, "\n")
}

func footerLine(footer string, width int) string {
	line, _, _ := strings.Cut(footer, "\n")
	if width > 0 {
		line = textutil.Clip(line, width)
	}
	return line
}
