package presenter

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/potluck-xl/ptlk/internal/domain/news"
)

const siteURL = "https://potluck.example"

func newLoadedList(articles ...news.Article) *news.List {
	l := news.NewList()
	l.Load(articles, nil)
	return l
}

func rowTexts(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Text()
	}
	return out
}

var sampleArticle = news.Article{
	Title:       "Go 1.30 released",
	URL:         "https://go.dev/blog",
	Summary:     "Faster builds.\nBetter tools.",
	Tag:         "Go",
	Source:      "Go Blog",
	PublishedAt: "2024-01-01T09:30:00Z",
}

func TestComposeLoading(t *testing.T) {
	rows := Compose(news.NewList(), 80, siteURL)
	if got := rowTexts(rows); !reflect.DeepEqual(got, []string{LoadingText}) {
		t.Fatalf("Compose() = %q", got)
	}
	if rows[0].Entry != NoEntry {
		t.Error("loading row must not belong to an entry")
	}
}

func TestComposeFailed(t *testing.T) {
	l := news.NewList()
	l.Load(nil, errors.New("dial tcp: refused"))

	rows := Compose(l, 80, siteURL)
	want := []string{LoadFailedTitle, "", "dial tcp: refused", "", RetryHint}
	if got := rowTexts(rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("Compose() = %q, want %q", got, want)
	}
	if rows[0].Spans[0].Style != StyleErrorTitle {
		t.Error("error header should use the error title style")
	}
}

func TestComposeCollapsed(t *testing.T) {
	l := newLoadedList(sampleArticle)

	rows := Compose(l, 80, siteURL)
	want := []string{
		"[Go] Go 1.30 released",
		"   Go Blog • 2024-01-01 09:30",
		"",
		"   Want more? Visit https://potluck.example ↗",
		"",
	}
	if got := rowTexts(rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("Compose() =\n%q\nwant\n%q", got, want)
	}

	entries := []int{0, 0, 1, 1, 1}
	for i, r := range rows {
		if r.Entry != entries[i] {
			t.Errorf("row %d entry = %d, want %d", i, r.Entry, entries[i])
		}
	}
	if rows[0].Spans[2].Style != StyleTitle {
		t.Error("title span should use the title style")
	}
}

func TestComposeExpanded(t *testing.T) {
	l := newLoadedList(sampleArticle)
	l.ToggleExpand()

	got := rowTexts(Compose(l, 80, siteURL))
	want := []string{
		"[Go] Go 1.30 released",
		"   Go Blog • 2024-01-01 09:30",
		"",
		"   Faster builds.",
		"   Better tools.",
		"",
		"   URL: https://go.dev/blog",
		"   " + OpenHint,
		"",
		"   Want more? Visit https://potluck.example ↗",
		"",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compose() =\n%q\nwant\n%q", got, want)
	}
}

func TestComposeExpandedWithoutSummary(t *testing.T) {
	a := sampleArticle
	a.Summary = ""
	l := newLoadedList(a)
	l.ToggleExpand()

	rows := Compose(l, 80, siteURL)
	if got := rows[3].Text(); got != "   "+NoSummaryText {
		t.Fatalf("row 3 = %q, want placeholder", got)
	}
	if rows[3].Spans[1].Style != StylePlaceholder {
		t.Error("placeholder should use the placeholder style")
	}
}

func TestComposeWrapsToContentWidth(t *testing.T) {
	a := sampleArticle
	a.Summary = strings.Repeat("word ", 30)
	a.URL = "https://example.com/" + strings.Repeat("x", 60)
	l := newLoadedList(a)
	l.ToggleExpand()

	const contentWidth = 40
	for _, r := range Compose(l, contentWidth, siteURL) {
		style := r.Spans
		if len(style) != 2 {
			continue
		}
		if s := style[1].Style; s != StyleSummary && s != StyleURL {
			continue
		}
		if w := len(style[1].Text); w > contentWidth-3 {
			t.Errorf("wrapped line %q is %d wide, limit %d", style[1].Text, w, contentWidth-3)
		}
	}
}

func TestComposeOnlyExpandsMembers(t *testing.T) {
	second := sampleArticle
	second.Title = "Second"
	l := newLoadedList(sampleArticle, second)
	l.Next()
	l.ToggleExpand()

	rows := Compose(l, 80, siteURL)
	first, last, ok := EntryBounds(rows, 0)
	if !ok || last-first != 1 {
		t.Errorf("entry 0 spans rows %d..%d, want 2 rows", first, last)
	}
	first, last, ok = EntryBounds(rows, 1)
	if !ok || last-first+1 != 8 {
		t.Errorf("entry 1 spans rows %d..%d, want 8 rows", first, last)
	}
}

func TestComposeEmptyLoadedList(t *testing.T) {
	l := newLoadedList()
	got := rowTexts(Compose(l, 80, siteURL))
	want := []string{"", "   Want more? Visit https://potluck.example ↗", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compose() = %q, want %q", got, want)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-01T00:00:00Z", "2024-01-01 00:00"},
		{"2024-06-30T23:59:59.123+02:00", "2024-06-30 23:59"},
		{"2024-01-01T00:00", "2024-01-01 00:00"},
		{"2024-01-01", "2024-01-01"},
		{"", ""},
		{"２０２４-01-01T00:00:00Z", "２０２４-01-01 00:00"},
		{"２０２４-０１-01", "２０２４-０１-01"},
	}
	for _, tt := range tests {
		got := FormatTime(tt.in)
		if got != tt.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("FormatTime(%q) produced invalid UTF-8 %q", tt.in, got)
		}
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		pane, want int
	}{
		{80, 68},
		{100, 85},
		{200, 170},
		{23, 20},
		{0, 20},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.pane); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.pane, got, tt.want)
		}
	}
}

func TestEntryBoundsMissing(t *testing.T) {
	if _, _, ok := EntryBounds(nil, 0); ok {
		t.Error("EntryBounds() on no rows should report missing")
	}
}
