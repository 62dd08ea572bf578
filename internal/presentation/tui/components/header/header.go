// Package header provides the banner band at the top of the screen.
package header

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/metrics"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/textutil"
)

// Banner is the block-letter title, one art line per row.
var Banner = []string{
	"██████╗  ██████╗ ████████╗██╗     ██╗   ██╗ ██████╗██╗  ██╗",
	"██╔══██╗██╔═══██╗╚══██╔══╝██║     ██║   ██║██╔════╝██║ ██╔╝",
	"██████╔╝██║   ██║   ██║   ██║     ██║   ██║██║     █████╔╝ ",
	"██╔═══╝ ██║   ██║   ██║   ██║     ██║   ██║██║     ██╔═██╗ ",
	"██║     ╚██████╔╝   ██║   ███████╗╚██████╔╝╚██████╗██║  ██╗",
	"╚═╝      ╚═════╝    ╚═╝   ╚══════╝ ╚═════╝  ╚═════╝╚═╝  ╚═╝",
}

// Props defines the properties for the header component.
type Props struct {
	Width int
}

var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("7")).
	Bold(true)

// Lines returns the banner band: a blank line, the art, then blank padding
// up to metrics.BannerLines. Art wider than the terminal is clipped.
func Lines(p Props) []string {
	lines := make([]string, 0, metrics.BannerLines)
	lines = append(lines, "")
	for _, art := range Banner {
		if len(lines) == metrics.BannerLines {
			break
		}
		if p.Width > 0 {
			art = textutil.Clip(art, p.Width)
		}
		lines = append(lines, bannerStyle.Render(art))
	}
	for len(lines) < metrics.BannerLines {
		lines = append(lines, "")
	}
	return lines
}

// Render renders the header component.
func Render(p Props) string {
	return strings.Join(Lines(p), "\n")
}
