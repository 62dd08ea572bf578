// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	Next
	Previous
	First
	Last
	PageDown
	PageUp
	Enter
	ToggleExpand
	Open
	CollapseAll
	Refresh
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Down):
		return Intent{Type: Next}
	case key.Matches(msg, keys.Up):
		return Intent{Type: Previous}
	case key.Matches(msg, keys.Top):
		return Intent{Type: First}
	case key.Matches(msg, keys.Bottom):
		return Intent{Type: Last}
	case key.Matches(msg, keys.DownPage):
		return Intent{Type: PageDown}
	case key.Matches(msg, keys.UpPage):
		return Intent{Type: PageUp}
	case key.Matches(msg, keys.Enter):
		return Intent{Type: Enter}
	case key.Matches(msg, keys.Toggle):
		return Intent{Type: ToggleExpand}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.CollapseAll):
		return Intent{Type: CollapseAll}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	default:
		return Intent{Type: None}
	}
}
