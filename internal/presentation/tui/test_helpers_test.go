package tui

import (
	"context"
	"fmt"

	"github.com/potluck-xl/ptlk/internal/application/settings"
	"github.com/potluck-xl/ptlk/internal/application/usecase"
	"github.com/potluck-xl/ptlk/internal/domain/news"
	"github.com/stretchr/testify/mock"
)

type stubSource struct {
	mock.Mock
}

func (s *stubSource) Fetch(ctx context.Context, page, limit int) (news.Page, error) {
	args := s.Called(ctx, page, limit)
	p, _ := args.Get(0).(news.Page)
	return p, args.Error(1)
}

type stubOpener struct {
	mock.Mock
}

func (s *stubOpener) Open(url string) error {
	return s.Called(url).Error(0)
}

func testSettings() settings.Settings {
	return settings.Settings{
		APIURL: "https://potluck.example",
		Limit:  50,
		KeyMap: settings.KeyMapConfig{
			Up:          "k,up",
			Down:        "j,down",
			Top:         "g",
			Bottom:      "G",
			UpPage:      "ctrl+u,pgup",
			DownPage:    "ctrl+d,pgdown",
			Enter:       "enter",
			Toggle:      "space",
			Open:        "o",
			CollapseAll: "x",
			Refresh:     "r",
			Quit:        "q,esc",
		},
	}
}

func testArticles(n int) []news.Article {
	articles := make([]news.Article, n)
	for i := range articles {
		articles[i] = news.Article{
			Title:       fmt.Sprintf("Article %d", i),
			URL:         fmt.Sprintf("https://example.com/%d", i),
			Summary:     fmt.Sprintf("Summary of article %d.", i),
			Tag:         "AI",
			Source:      "Example",
			PublishedAt: "2025-01-15T10:30:00Z",
		}
	}
	return articles
}

func newTestModel(src usecase.Source, opener func(string) error) *Model {
	cfg := testSettings()
	return NewModel(cfg, usecase.NewNewsService(src, cfg.Limit), opener)
}
