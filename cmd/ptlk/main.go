// Command ptlk is a terminal reader for the Potluck tech news feed.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/potluck-xl/ptlk/internal/application/settings"
	"github.com/potluck-xl/ptlk/internal/application/usecase"
	"github.com/potluck-xl/ptlk/internal/infrastructure/api"
	"github.com/potluck-xl/ptlk/internal/infrastructure/browser"
	"github.com/potluck-xl/ptlk/internal/infrastructure/config"
	"github.com/potluck-xl/ptlk/internal/infrastructure/feed"
	"github.com/potluck-xl/ptlk/internal/presentation/tui"
)

var version = "0.1.0"

func main() {
	cfg, _, err := config.Load(os.Args[1:], kong.Vars{"version": version})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer closeLog()

	newsSvc := usecase.NewNewsService(newSource(cfg), cfg.Limit)
	program := tea.NewProgram(
		tui.NewModel(cfg, newsSvc, browser.Open),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		closeLog()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newSource(cfg settings.Settings) usecase.Source {
	if cfg.FeedURL != "" {
		log.Printf("reading articles from feed %s", cfg.FeedURL)
		return feed.NewSource(cfg.FeedURL)
	}
	log.Printf("reading articles from %s", cfg.APIURL)
	return api.NewClient(cfg.APIURL)
}

// setupLogging writes logs to the debug file, or discards them. The
// terminal belongs to the UI, so nothing is logged to stderr.
func setupLogging(cfg settings.Settings) (func(), error) {
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "ptlk")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
