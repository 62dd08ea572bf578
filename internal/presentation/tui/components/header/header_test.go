package header

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/metrics"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		maxWidth int
	}{
		{name: "wide terminal", width: 120, maxWidth: 58},
		{name: "narrow terminal clips art", width: 20, maxWidth: 20},
		{name: "unknown width", width: 0, maxWidth: 58},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Lines(Props{Width: tt.width})
			if len(lines) != metrics.BannerLines {
				t.Fatalf("Lines() has %d lines, want %d", len(lines), metrics.BannerLines)
			}
			if lines[0] != "" {
				t.Errorf("first banner line = %q, want blank", lines[0])
			}
			for i, line := range lines {
				if w := ansi.StringWidth(line); w > tt.maxWidth {
					t.Errorf("line %d width = %d, want <= %d", i, w, tt.maxWidth)
				}
			}
		})
	}
}

func TestRender_ContainsArt(t *testing.T) {
	got := ansi.Strip(Render(Props{Width: 80}))
	for _, art := range Banner {
		if !strings.Contains(got, art) {
			t.Fatalf("Render() missing art line %q", art)
		}
	}
	if n := strings.Count(got, "\n") + 1; n != metrics.BannerLines {
		t.Fatalf("Render() has %d lines, want %d", n, metrics.BannerLines)
	}
}
