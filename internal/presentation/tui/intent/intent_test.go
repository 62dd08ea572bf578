package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/potluck-xl/ptlk/internal/application/settings"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/state"
)

func testKeys() state.KeyMap {
	return state.NewKeyMap(settings.KeyMapConfig{
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
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFromKeyMsg(t *testing.T) {
	keys := testKeys()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Type
	}{
		{name: "q quits", msg: runes("q"), want: Quit},
		{name: "esc quits", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: Quit},
		{name: "ctrl+c quits", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: Quit},
		{name: "j next", msg: runes("j"), want: Next},
		{name: "down next", msg: tea.KeyMsg{Type: tea.KeyDown}, want: Next},
		{name: "k previous", msg: runes("k"), want: Previous},
		{name: "up previous", msg: tea.KeyMsg{Type: tea.KeyUp}, want: Previous},
		{name: "g first", msg: runes("g"), want: First},
		{name: "G last", msg: runes("G"), want: Last},
		{name: "ctrl+d page down", msg: tea.KeyMsg{Type: tea.KeyCtrlD}, want: PageDown},
		{name: "pgdown page down", msg: tea.KeyMsg{Type: tea.KeyPgDown}, want: PageDown},
		{name: "ctrl+u page up", msg: tea.KeyMsg{Type: tea.KeyCtrlU}, want: PageUp},
		{name: "pgup page up", msg: tea.KeyMsg{Type: tea.KeyPgUp}, want: PageUp},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: Enter},
		{name: "space toggles", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: ToggleExpand},
		{name: "o opens", msg: runes("o"), want: Open},
		{name: "x collapses", msg: runes("x"), want: CollapseAll},
		{name: "r refreshes", msg: runes("r"), want: Refresh},
		{name: "unbound", msg: runes("z"), want: None},
		{name: "bare d is not paging", msg: runes("d"), want: None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromKeyMsg(tt.msg, keys).Type; got != tt.want {
				t.Fatalf("FromKeyMsg(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
