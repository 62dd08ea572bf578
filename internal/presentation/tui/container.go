// Package tui provides the main user interface model and view components.
package tui

import (
	"github.com/potluck-xl/ptlk/internal/presentation/tui/components/header"
	mainview "github.com/potluck-xl/ptlk/internal/presentation/tui/components/main"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/components/modal"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/state"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/update"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Width:  m.state.Width,
		Height: m.state.Height,
		Header: header.Props{Width: m.state.Width},
		Main:   m.buildMainProps(),
		Modal:  m.buildModalProps(),
		Footer: state.FooterHelpText(m.state.Help, m.state.Keys),
	}
}

func (m *Model) buildMainProps() mainview.Props {
	return mainview.Props{
		Width:  m.state.Width,
		Height: update.ContentHeight(m.state.Height),
		Body:   m.state.Viewport.View(),
	}
}

func (m *Model) buildModalProps() modal.Props {
	return modal.Props{
		Visible: m.state.LastError != "",
		Message: m.state.LastError,
		Width:   m.state.Width,
		Height:  m.state.Height,
	}
}
