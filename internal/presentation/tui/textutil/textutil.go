// Package textutil provides width-aware text helpers for the TUI.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Clip cuts styled text to at most width display columns.
func Clip(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "")
}

// PadRight pads text with spaces up to width display columns.
func PadRight(text string, width int) string {
	gap := width - ansi.StringWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}
