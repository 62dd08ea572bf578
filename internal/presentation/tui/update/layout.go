package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/potluck-xl/ptlk/internal/domain/news"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/metrics"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/presenter"
	"github.com/potluck-xl/ptlk/internal/presentation/tui/state"
	listview "github.com/potluck-xl/ptlk/internal/presentation/tui/view/list"
)

// UpdateListSizes sizes the content viewport to the band between banner and footer.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	s.Viewport.Width = s.Width
	s.Viewport.Height = ContentHeight(s.Height)
}

// ContentHeight returns the rows left for content on a terminal of the given height.
func ContentHeight(height int) int {
	return clampMin(height-metrics.BannerLines-metrics.FooterLines, 0)
}

// SyncContent recomposes the content rows and scrolls so the selected entry
// stays on screen.
func SyncContent(s *state.ModelState) {
	if s.List == nil {
		return
	}
	rows := presenter.Compose(s.List, presenter.ContentWidth(s.Width), s.SiteURL)

	selected, hasSelection := s.List.Selected()
	_, loaded := s.List.State().(news.Loaded)
	hasSelection = hasSelection && loaded

	lines := listview.RenderRows(rows, s.Width, selected, hasSelection)
	s.Viewport.SetContent(strings.Join(lines, "\n"))

	if !hasSelection {
		s.Viewport.GotoTop()
		return
	}
	scrollToEntry(&s.Viewport, rows, selected)
}

// scrollToEntry moves the viewport the least distance that shows the entry.
// Entries taller than the viewport are shown from their first row.
func scrollToEntry(vp *viewport.Model, rows []presenter.Row, entry int) {
	first, last, ok := presenter.EntryBounds(rows, entry)
	if !ok || vp.Height <= 0 {
		return
	}
	top := vp.YOffset
	switch {
	case first < top:
		top = first
	case last >= top+vp.Height:
		top = min(last-vp.Height+1, first)
	}
	vp.SetYOffset(top)
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
