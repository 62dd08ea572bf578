// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	// BannerLines is the banner band: a blank line, six art lines and a blank line.
	BannerLines = 8
	FooterLines = 1

	ErrorBoxMaxWidth = 50
	ErrorBoxHeight   = 5
	// ErrorBoxMargin is the horizontal space kept free around the popup.
	ErrorBoxMargin = 4
)
