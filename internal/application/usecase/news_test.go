package usecase

import (
	"context"
	"errors"
	"testing"

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

func TestLatestPassesPageAndLimit(t *testing.T) {
	src := &stubSource{}
	src.On("Fetch", mock.Anything, FirstPage, 25).Return(news.Page{
		Articles: []news.Article{
			{Title: "A", URL: "https://a", Tag: "AI", Source: "S", PublishedAt: "2024-01-01T00:00:00Z"},
			{Title: "B", URL: "https://b", PublishedAt: "2024-01-02T00:00:00Z"},
		},
	}, nil)

	svc := NewNewsService(src, 25)
	got, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	src.AssertExpectations(t)

	if len(got) != 2 {
		t.Fatalf("Latest() returned %d articles, want 2", len(got))
	}
	if got[0].Tag != "AI" || got[0].Source != "S" {
		t.Errorf("first article changed: %+v", got[0])
	}
	if got[1].Tag != news.DefaultTag || got[1].Source != news.DefaultSource {
		t.Errorf("second article missing defaults: %+v", got[1])
	}
}

func TestLatestReturnsSourceError(t *testing.T) {
	src := &stubSource{}
	wantErr := errors.New("503 Service Unavailable")
	src.On("Fetch", mock.Anything, FirstPage, 50).Return(news.Page{}, wantErr)

	_, err := NewNewsService(src, 50).Latest(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("Latest() error = %v, want %v", err, wantErr)
	}
}

func TestLatestAppliesTimeout(t *testing.T) {
	src := &stubSource{}
	src.On("Fetch", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), FirstPage, 10).Return(news.Page{}, nil)

	if _, err := NewNewsService(src, 10).Latest(context.Background()); err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	src.AssertExpectations(t)
}

func TestLatestWithoutSource(t *testing.T) {
	var svc *NewsService
	if _, err := svc.Latest(context.Background()); err == nil {
		t.Fatal("expected error without a source")
	}
}
