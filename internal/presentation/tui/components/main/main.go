// Package mainview provides the content band between banner and footer.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Body   string
}

// Render renders the body into a band of exactly Height lines.
func Render(p Props) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		MaxWidth(p.Width).
		MaxHeight(p.Height).
		Render(p.Body)
}
