package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/potluck-xl/ptlk/internal/application/settings"
	"github.com/potluck-xl/ptlk/internal/application/usecase"
	"github.com/potluck-xl/ptlk/internal/domain/news"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/state"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/update"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/view"
)

// Model represents the main application state.
type Model struct {
	settings    settings.Settings
	news        *usecase.NewsService
	openBrowser func(string) error
	state       *state.ModelState
}

// NewModel creates a new application model. openBrowser is called with the
// URL to open; the site URL is the configured API base.
func NewModel(cfg settings.Settings, newsSvc *usecase.NewsService, openBrowser func(string) error) *Model {
	return &Model{
		settings:    cfg,
		news:        newsSvc,
		openBrowser: openBrowser,
		state:       newModelState(cfg),
	}
}

// Init starts the first fetch.
func (m *Model) Init() tea.Cmd {
	return update.StartInitialLoad(m.state, m.deps())
}

// Update handles messages and updates the model state. Quit and refresh
// requests recorded while handling a key are acted on after dispatch.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		update.HandleKeyMsg(m.state, msg, m.deps())
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.ArticlesFetchedMsg:
		update.HandleArticlesFetchedMsg(m.state, msg)
	}

	if m.state.QuitRequested {
		return m, tea.Quit
	}
	return m, update.StartRefresh(m.state, m.deps())
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		News:        m.news,
		OpenBrowser: m.openBrowser,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	return &state.ModelState{
		List:     news.NewList(),
		Viewport: viewport.New(0, 0),
		Help:     state.NewHelp(),
		Keys:     state.NewKeyMap(cfg.KeyMap),
		SiteURL:  cfg.APIURL,
	}
}
