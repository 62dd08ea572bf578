// Package modal provides the transient error popup.
package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/metrics"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/textutil"
)

// Title is drawn into the top border.
const Title = "Error"

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Message string
	// Width and Height are the terminal size the popup is centered in.
	Width  int
	Height int
}

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

// Rect is the popup position and size in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Bounds returns where the popup is drawn. ok is false when the terminal is
// too small to hold it.
func Bounds(width, height int) (r Rect, ok bool) {
	w := min(metrics.ErrorBoxMaxWidth, width-metrics.ErrorBoxMargin)
	h := metrics.ErrorBoxHeight
	if w < 2 || height < h {
		return Rect{}, false
	}
	return Rect{
		X:      (width - w) / 2,
		Y:      (height - h) / 2,
		Width:  w,
		Height: h,
	}, true
}

// Box renders the bordered popup as lines of exactly r.Width cells.
func Box(message string, r Rect) []string {
	border := lipgloss.NormalBorder()
	inner := r.Width - 2

	top := textutil.Clip(Title+strings.Repeat(border.Top, max(inner-len(Title), 0)), inner)
	lines := []string{
		borderStyle.Render(border.TopLeft + top + border.TopRight),
	}

	body := wrapMessage(message, inner, r.Height-2)
	for _, line := range body {
		lines = append(lines,
			borderStyle.Render(border.Left)+
				textStyle.Render(textutil.PadRight(line, inner))+
				borderStyle.Render(border.Right))
	}

	lines = append(lines,
		borderStyle.Render(border.BottomLeft+strings.Repeat(border.Bottom, inner)+border.BottomRight))
	return lines
}

// Overlay draws the popup centered over base, which holds the full frame.
func Overlay(base string, p Props) string {
	if !p.Visible || p.Message == "" {
		return base
	}
	r, ok := Bounds(p.Width, p.Height)
	if !ok {
		return base
	}

	lines := strings.Split(base, "\n")
	for len(lines) < r.Y+r.Height {
		lines = append(lines, "")
	}
	for i, boxLine := range Box(p.Message, r) {
		y := r.Y + i
		lines[y] = splice(lines[y], boxLine, r.X, r.Width)
	}
	return strings.Join(lines, "\n")
}

// Render renders the modal component over base.
func Render(base string, p Props) string {
	return Overlay(base, p)
}

func wrapMessage(message string, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	// wordwrap never splits a word, so hard-wrap what is still too long.
	wrapped := wrap.String(wordwrap.String(strings.TrimSpace(message), width), width)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = textutil.Clip(strings.TrimSpace(line), width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func splice(line, insert string, x, width int) string {
	left := textutil.PadRight(textutil.Clip(line, x), x)
	right := ansi.TruncateLeft(line, x+width, "")
	return left + insert + right
}
