// Package feed reads articles straight from an RSS/Atom feed.
package feed

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/potluck-xl/ptlk/internal/domain/news"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

// Item field fallbacks.
const (
	UntitledText   = "Untitled"
	MissingLink    = "#"
	NoSummaryText  = "No summary available."
	FallbackSource = "RSS Feed"
	SummaryLimit   = 200
)

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "ptlk/0.1.0"
	fp.Client = &http.Client{
		Timeout:   10 * time.Second,
		Transport: acceptTransport{base: http.DefaultTransport},
	}
	return fp.ParseURLWithContext(url, ctx)
}

// Source serves a single feed as one page of articles.
type Source struct {
	URL string
	Now func() time.Time
}

// NewSource creates a Source for the feed at url.
func NewSource(url string) *Source {
	return &Source{URL: strings.TrimSpace(url), Now: time.Now}
}

// Fetch parses the feed and maps up to limit items to articles.
// A feed has a single page; later pages are empty.
func (s *Source) Fetch(ctx context.Context, page, limit int) (news.Page, error) {
	if s.URL == "" {
		return news.Page{}, errors.New("feed url is empty")
	}
	if page > 1 {
		return news.Page{Articles: []news.Article{}}, nil
	}
	parsed, err := ParserFunc(ctx, s.URL)
	if err != nil {
		return news.Page{}, err
	}

	items := parsed.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	source := strings.TrimSpace(parsed.Title)
	if source == "" {
		source = FallbackSource
	}

	articles := make([]news.Article, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		articles = append(articles, news.Article{
			Title:       orDefault(strings.TrimSpace(item.Title), UntitledText),
			URL:         orDefault(strings.TrimSpace(item.Link), MissingLink),
			Summary:     orDefault(summarize(item), NoSummaryText),
			Tag:         news.DefaultTag,
			Source:      source,
			PublishedAt: s.published(item),
		})
	}
	return news.Page{Articles: articles}, nil
}

func (s *Source) published(item *gofeed.Item) string {
	var date time.Time
	if item.PublishedParsed != nil {
		date = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		date = *item.UpdatedParsed
	} else if s.Now != nil {
		date = s.Now()
	} else {
		date = time.Now()
	}
	return date.UTC().Format(time.RFC3339)
}

func summarize(item *gofeed.Item) string {
	raw := item.Description
	if strings.TrimSpace(raw) == "" {
		raw = item.Content
	}
	text := strings.Join(strings.Fields(plainText(raw)), " ")

	runes := []rune(text)
	if len(runes) > SummaryLimit {
		return strings.TrimSpace(string(runes[:SummaryLimit])) + "..."
	}
	return text
}

func plainText(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return html
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return doc.Text()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
