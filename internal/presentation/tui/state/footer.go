package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// FooterSeparator separates footer entries.
const FooterSeparator = " "

// NewHelp returns the help model styled for the footer: white keys, plain descriptions.
func NewHelp() help.Model {
	h := help.New()
	h.ShortSeparator = FooterSeparator
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	h.Styles.ShortDesc = lipgloss.NewStyle()
	h.Styles.ShortSeparator = lipgloss.NewStyle()
	return h
}

// FooterHelpText renders the single footer line, e.g. "j/↓ Down k/↑ Up".
func FooterHelpText(h help.Model, keys KeyMap) string {
	return h.ShortHelpView(keys.ShortHelp())
}
