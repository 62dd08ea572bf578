// Package presenter turns the article list into renderable rows.
package presenter

import (
	"fmt"
	"strings"

	"github.com/potluck-xl/ptlk/internal/domain/news"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/textutil"
)

// Texts shown by the composer.
const (
	LoadingText     = "Loading articles..."
	LoadFailedTitle = "Failed to load articles"
	RetryHint       = "Press 'r' to retry or 'q' to quit"
	NoSummaryText   = "No summary available"
	OpenHint        = "Press Enter to open in browser"
	WebsiteLead     = "Want more? Visit "

	indent      = "   "
	indentWidth = len(indent)
)

// MinContentWidth is the narrowest content width the composer lays out at.
const MinContentWidth = 20

// Style tags a span with its visual role.
type Style int

const (
	StylePlain Style = iota
	StyleInfo
	StyleErrorTitle
	StyleErrorDetail
	StyleTag
	StyleTitle
	StyleMeta
	StyleSummary
	StylePlaceholder
	StyleURL
	StyleHint
	StyleLink
)

// NoEntry marks rows that do not belong to a selectable entry.
const NoEntry = -1

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style Style
}

// Row is one terminal line of the content pane.
type Row struct {
	// Entry is the list index the row belongs to, or NoEntry.
	Entry int
	Spans []Span
}

// Text returns the row's text without styling.
func (r Row) Text() string {
	var b strings.Builder
	for _, s := range r.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// ContentWidth returns the layout width for a pane of the given width:
// 85% of it, never less than MinContentWidth.
func ContentWidth(paneWidth int) int {
	return max(paneWidth*85/100, MinContentWidth)
}

// FormatTime shortens an ISO-8601 timestamp to "YYYY-MM-DD HH:MM".
// Positions count characters, not bytes. Strings shorter than 16
// characters are returned unchanged.
func FormatTime(iso string) string {
	chars := []rune(iso)
	if len(chars) < 16 {
		return iso
	}
	return string(chars[0:10]) + " " + string(chars[11:16])
}

// Compose builds the rows for the list's current state.
func Compose(l *news.List, contentWidth int, siteURL string) []Row {
	switch state := l.State().(type) {
	case news.Loading:
		return []Row{row(NoEntry, Span{LoadingText, StyleInfo})}
	case news.Failed:
		return []Row{
			row(NoEntry, Span{LoadFailedTitle, StyleErrorTitle}),
			blank(NoEntry),
			row(NoEntry, Span{state.Message, StyleErrorDetail}),
			blank(NoEntry),
			row(NoEntry, Span{RetryHint, StylePlain}),
		}
	case news.Loaded:
		return composeArticles(l, contentWidth, siteURL)
	default:
		panic(fmt.Sprintf("presenter: unknown load state %T", state))
	}
}

func composeArticles(l *news.List, contentWidth int, siteURL string) []Row {
	var rows []Row
	for i, a := range l.Items() {
		rows = append(rows, articleRows(i, a, l.IsExpanded(i), contentWidth)...)
	}

	trailing := l.TrailingIndex()
	rows = append(rows,
		blank(trailing),
		row(trailing,
			Span{indent, StylePlain},
			Span{WebsiteLead, StylePlain},
			Span{siteURL + " ↗", StyleLink},
		),
		blank(trailing),
	)
	return rows
}

func articleRows(i int, a news.Article, expanded bool, contentWidth int) []Row {
	rows := []Row{
		row(i,
			Span{"[" + a.Tag + "]", StyleTag},
			Span{" ", StylePlain},
			Span{a.Title, StyleTitle},
		),
		row(i,
			Span{indent, StylePlain},
			Span{fmt.Sprintf("%s • %s", a.Source, FormatTime(a.PublishedAt)), StyleMeta},
		),
	}
	if !expanded {
		return rows
	}

	textWidth := max(contentWidth-indentWidth, 0)

	rows = append(rows, blank(i))
	if a.Summary == "" {
		rows = append(rows, indented(i, NoSummaryText, StylePlaceholder))
	} else {
		for _, line := range textutil.Wrap(a.Summary, textWidth) {
			rows = append(rows, indented(i, line, StyleSummary))
		}
	}

	rows = append(rows, blank(i))
	for _, line := range textutil.Wrap("URL: "+a.URL, textWidth) {
		rows = append(rows, indented(i, line, StyleURL))
	}
	rows = append(rows, indented(i, OpenHint, StyleHint))
	return rows
}

// EntryBounds returns the first and last row index belonging to entry.
func EntryBounds(rows []Row, entry int) (first, last int, ok bool) {
	first, last = -1, -1
	for i, r := range rows {
		if r.Entry != entry {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	return first, last, first >= 0
}

func row(entry int, spans ...Span) Row {
	return Row{Entry: entry, Spans: spans}
}

func blank(entry int) Row {
	return Row{Entry: entry}
}

func indented(entry int, text string, style Style) Row {
	return row(entry, Span{indent, StylePlain}, Span{text, style})
}
