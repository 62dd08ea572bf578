// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/potluck-xl/ptlk/internal/application/usecase"
	"github.com/potluck-xl/ptlk/internal/domain/news"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/intent"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	News        *usecase.NewsService
	OpenBrowser func(string) error
}

// ArticlesFetchedMsg is emitted after fetching the latest articles.
type ArticlesFetchedMsg struct {
	Articles []news.Article
	Err      error
	// Refresh marks a user-requested reload, which also collapses entries.
	Refresh bool
}

var errNoOpener = errors.New("no browser opener configured")

// FetchArticlesCmd creates a command to fetch the latest articles.
func FetchArticlesCmd(newsSvc *usecase.NewsService, refresh bool) tea.Cmd {
	return func() tea.Msg {
		articles, err := newsSvc.Latest(context.Background())
		return ArticlesFetchedMsg{Articles: articles, Err: err, Refresh: refresh}
	}
}

// HandleKeyMsg dismisses any popup and applies the key's intent.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) {
	s.ClearError()
	Dispatch(s, intent.FromKeyMsg(msg, s.Keys), deps)
	SyncContent(s)
}

// Dispatch applies one intent to the state. Quit and refresh are only
// recorded; the frame driver acts on them after dispatch.
func Dispatch(s *state.ModelState, in intent.Intent, deps Deps) {
	l := s.List
	switch in.Type {
	case intent.Quit:
		s.QuitRequested = true
	case intent.Next:
		l.Next()
	case intent.Previous:
		l.Previous()
	case intent.First:
		l.GoToFirst()
	case intent.Last:
		l.GoToLast()
	case intent.PageDown:
		l.PageDown(news.PageStep)
	case intent.PageUp:
		l.PageUp(news.PageStep)
	case intent.Enter:
		handleEnter(s, deps)
	case intent.ToggleExpand:
		l.ToggleExpand()
	case intent.Open:
		openSelected(s, deps)
	case intent.CollapseAll:
		l.CollapseAll()
	case intent.Refresh:
		s.RefreshRequested = true
	case intent.None:
	}
}

// StartRefresh consumes a pending refresh request. It returns nil while a
// fetch is already in flight; the request then stays pending.
func StartRefresh(s *state.ModelState, deps Deps) tea.Cmd {
	if !s.RefreshRequested || s.Fetching {
		return nil
	}
	s.RefreshRequested = false
	return beginFetch(s, deps, true)
}

// StartInitialLoad begins the first fetch.
func StartInitialLoad(s *state.ModelState, deps Deps) tea.Cmd {
	return beginFetch(s, deps, false)
}

func beginFetch(s *state.ModelState, deps Deps, refresh bool) tea.Cmd {
	if refresh {
		log.Printf("refresh requested")
	}
	s.Fetching = true
	s.List.BeginLoad()
	SyncContent(s)
	return FetchArticlesCmd(deps.News, refresh)
}

// HandleArticlesFetchedMsg applies a fetch outcome.
func HandleArticlesFetchedMsg(s *state.ModelState, msg ArticlesFetchedMsg) {
	s.Fetching = false
	if msg.Err != nil {
		log.Printf("load failed: %v", msg.Err)
	}
	if msg.Refresh {
		s.List.Refresh(msg.Articles, msg.Err)
	} else {
		s.List.Load(msg.Articles, msg.Err)
	}
	s.Viewport.GotoTop()
	SyncContent(s)
}

// HandleWindowSize records the terminal size and re-lays out the content.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height
	UpdateListSizes(s)
	SyncContent(s)
}

func handleEnter(s *state.ModelState, deps Deps) {
	l := s.List
	if _, ok := l.Selected(); !ok {
		return
	}
	switch {
	case l.OnTrailing():
		openWebsite(s, deps)
	case l.IsSelectedExpanded():
		openSelected(s, deps)
	default:
		l.ToggleExpand()
	}
}

func openSelected(s *state.ModelState, deps Deps) {
	if s.List.OnTrailing() {
		openWebsite(s, deps)
		return
	}
	article, ok := s.List.SelectedArticle()
	if !ok {
		return
	}
	if err := openURL(deps, article.URL); err != nil {
		log.Printf("open article: %v", err)
		s.ShowError(fmt.Sprintf("Failed to open browser: %v", err))
	}
}

func openWebsite(s *state.ModelState, deps Deps) {
	if err := openURL(deps, s.SiteURL); err != nil {
		log.Printf("open website: %v", err)
		s.ShowError(fmt.Sprintf("Failed to open website: %v", err))
	}
}

func openURL(deps Deps, url string) error {
	if deps.OpenBrowser == nil {
		return errNoOpener
	}
	url = strings.TrimSpace(url)
	log.Printf("opening %s", url)
	return deps.OpenBrowser(url)
}
