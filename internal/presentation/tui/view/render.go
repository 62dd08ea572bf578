// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/potluck-xl/ptlk/internal/presentation/tui/components/header"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/components/layout"
	mainview "github.com/potluck-xl/ptlk/internal/presentation/tui/components/main"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/components/modal"
)

// Props aggregates properties for all UI components.
type Props struct {
	Width  int
	Height int
	Header header.Props
	Main   mainview.Props
	Modal  modal.Props
	Footer string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	frame := layout.Render(layout.Props{
		Banner: header.Render(p.Header),
		Main:   mainview.Render(p.Main),
		Footer: p.Footer,
		Width:  p.Width,
		Height: p.Height,
	})
	return modal.Render(frame, p.Modal)
}
