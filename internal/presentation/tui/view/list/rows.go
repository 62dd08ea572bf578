// Package listview renders composed rows into styled terminal lines.
package listview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/presenter"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/textutil"
)

// Terminal palette indexes.
const (
	colorBlack    = lipgloss.Color("0")
	colorBlue     = lipgloss.Color("4")
	colorGray     = lipgloss.Color("7")
	colorDarkGray = lipgloss.Color("8")
	colorWhite    = lipgloss.Color("15")
)

var spanStyles = map[presenter.Style]lipgloss.Style{
	presenter.StylePlain:       lipgloss.NewStyle(),
	presenter.StyleInfo:        lipgloss.NewStyle().Foreground(colorGray),
	presenter.StyleErrorTitle:  lipgloss.NewStyle().Foreground(colorWhite).Bold(true),
	presenter.StyleErrorDetail: lipgloss.NewStyle().Foreground(colorDarkGray),
	presenter.StyleTag:         lipgloss.NewStyle().Foreground(colorGray),
	presenter.StyleTitle:       lipgloss.NewStyle().Bold(true),
	presenter.StyleMeta:        lipgloss.NewStyle().Foreground(colorDarkGray),
	presenter.StyleSummary:     lipgloss.NewStyle().Foreground(colorGray),
	presenter.StylePlaceholder: lipgloss.NewStyle().Foreground(colorDarkGray).Italic(true),
	presenter.StyleURL:         lipgloss.NewStyle().Foreground(colorDarkGray).Underline(true),
	presenter.StyleHint:        lipgloss.NewStyle().Foreground(colorWhite),
	presenter.StyleLink:        lipgloss.NewStyle().Foreground(colorBlue).Underline(true),
}

// Highlight is applied across the full width of every row of the selected entry.
var Highlight = lipgloss.NewStyle().
	Background(colorGray).
	Foreground(colorBlack).
	Bold(true)

// SpanStyle returns the lipgloss style for a presenter style.
func SpanStyle(s presenter.Style) lipgloss.Style {
	if style, ok := spanStyles[s]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// RenderRow renders one row clipped to width. Span text is measured with the
// textutil width table the presenter wrapped it with. Highlighted rows are
// padded so the highlight spans the whole line.
func RenderRow(r presenter.Row, width int, highlighted bool) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for _, span := range r.Spans {
		if used >= width {
			break
		}
		text := textutil.ClipWidth(span.Text, width-used)
		used += textutil.Width(text)

		style := SpanStyle(span.Style)
		if highlighted {
			style = style.
				Background(colorGray).
				Foreground(colorBlack).
				Bold(true)
		}
		b.WriteString(style.Render(text))
	}

	if highlighted && used < width {
		b.WriteString(Highlight.Render(strings.Repeat(" ", width-used)))
	}
	return b.String()
}

// RenderRows renders rows, highlighting those that belong to the selected entry.
func RenderRows(rows []presenter.Row, width, selected int, hasSelection bool) []string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		highlighted := hasSelection && r.Entry != presenter.NoEntry && r.Entry == selected
		lines[i] = RenderRow(r, width, highlighted)
	}
	return lines
}
