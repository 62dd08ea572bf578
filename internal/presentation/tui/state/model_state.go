package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/potluck-xl/ptlk/internal/domain/news"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	List     *news.List
	Viewport viewport.Model
	Help     help.Model
	Keys     KeyMap
	Width    int
	Height   int
	SiteURL  string

	// LastError is shown in the error popup until the next key press.
	LastError string

	QuitRequested    bool
	RefreshRequested bool
	// Fetching is true while a fetch command is in flight.
	Fetching bool
}

// ShowError sets the popup message.
func (s *ModelState) ShowError(msg string) {
	s.LastError = msg
}

// ClearError dismisses the popup.
func (s *ModelState) ClearError() {
	s.LastError = ""
}
