// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/potluck-xl/ptlk/internal/domain/news"
)

// FirstPage is the page the reader requests.
const FirstPage = 1

// DefaultFetchTimeout bounds one fetch.
const DefaultFetchTimeout = 15 * time.Second

// Source abstracts where articles come from.
type Source interface {
	Fetch(ctx context.Context, page, limit int) (news.Page, error)
}

// NewsService loads pages of articles from a Source.
type NewsService struct {
	Source  Source
	Limit   int
	Timeout time.Duration
}

// NewNewsService constructs a NewsService.
func NewNewsService(source Source, limit int) *NewsService {
	return &NewsService{
		Source:  source,
		Limit:   limit,
		Timeout: DefaultFetchTimeout,
	}
}

// Latest fetches the first page of articles and applies field defaults.
func (s *NewsService) Latest(ctx context.Context) ([]news.Article, error) {
	if s == nil || s.Source == nil {
		return nil, errors.New("no article source configured")
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	log.Printf("fetching page %d (limit %d)", FirstPage, s.Limit)
	page, err := s.Source.Fetch(ctx, FirstPage, s.Limit)
	if err != nil {
		log.Printf("fetch failed: %v", err)
		return nil, err
	}

	articles := make([]news.Article, len(page.Articles))
	for i, a := range page.Articles {
		articles[i] = a.WithDefaults()
	}
	log.Printf("fetched %d articles", len(articles))
	return articles, nil
}
