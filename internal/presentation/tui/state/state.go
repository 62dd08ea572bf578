// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/potluck-xl/ptlk/internal/application/settings"
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	UpPage      key.Binding
	DownPage    key.Binding
	Enter       key.Binding
	Toggle      key.Binding
	Open        key.Binding
	CollapseAll key.Binding
	Refresh     key.Binding
	Quit        key.Binding
}

// ShortHelp returns the bindings listed in the footer.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Enter, k.Toggle, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Top, k.Bottom},
		{k.DownPage, k.UpPage},
		{k.Enter, k.Toggle, k.Open, k.CollapseAll},
		{k.Refresh, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:          binding(cfg.Up, 2, "Up"),
		Down:        binding(cfg.Down, 2, "Down"),
		Top:         binding(cfg.Top, 1, "Top"),
		Bottom:      binding(cfg.Bottom, 1, "Bottom"),
		UpPage:      binding(cfg.UpPage, 1, "Page up"),
		DownPage:    binding(cfg.DownPage, 1, "Page down"),
		Enter:       binding(cfg.Enter, 1, "Open"),
		Toggle:      binding(cfg.Toggle, 1, "Toggle"),
		Open:        binding(cfg.Open, 1, "Browser"),
		CollapseAll: binding(cfg.CollapseAll, 1, "Collapse"),
		Refresh:     binding(cfg.Refresh, 1, "Refresh"),
		Quit: key.NewBinding(
			key.WithKeys(append(splitKeys(cfg.Quit), "ctrl+c")...),
			key.WithHelp(helpLabel(cfg.Quit, 1), "Quit"),
		),
	}
}

func binding(keys string, labelKeys int, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(helpLabel(keys, labelKeys), desc),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			if strings.Contains(part, " ") {
				out = append(out, " ", "space")
			}
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		case "space":
			out = append(out, " ")
		}
	}
	return out
}

var keyGlyphs = map[string]string{
	"down":   "↓",
	"up":     "↑",
	"left":   "←",
	"right":  "→",
	"enter":  "Enter",
	"space":  "Space",
	"esc":    "Esc",
	"tab":    "Tab",
	"pgdown": "PgDn",
	"pgdn":   "PgDn",
	"pgup":   "PgUp",
}

// helpLabel renders the first n configured keys for the footer, e.g. "j/↓".
func helpLabel(keys string, n int) string {
	var labels []string
	for _, k := range splitKeys(keys) {
		if k == " " {
			k = "space"
		}
		if glyph, ok := keyGlyphs[k]; ok {
			k = glyph
		}
		if !containsString(labels, k) {
			labels = append(labels, k)
		}
		if len(labels) == n {
			break
		}
	}
	return strings.Join(labels, "/")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
