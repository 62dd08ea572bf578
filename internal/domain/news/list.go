package news

// PageStep is the distance covered by PageDown and PageUp.
const PageStep = 10

const noSelection = -1

// List holds the loaded articles, the selection and the expanded entries.
//
// Valid selections are 0..Len() inclusive; Len() itself is the trailing
// "visit website" entry. The selection is unset only while the list is empty.
type List struct {
	items    []Article
	selected int
	expanded map[int]struct{}
	state    LoadState
}

// NewList returns an empty list in the Loading state.
func NewList() *List {
	return &List{
		selected: noSelection,
		expanded: make(map[int]struct{}),
		state:    Loading{},
	}
}

// Items returns the loaded articles.
func (l *List) Items() []Article { return l.items }

// Len returns the number of loaded articles.
func (l *List) Len() int { return len(l.items) }

// State returns the current load state.
func (l *List) State() LoadState { return l.state }

// Selected returns the selected index and whether a selection exists.
func (l *List) Selected() (int, bool) {
	if l.selected == noSelection {
		return 0, false
	}
	return l.selected, true
}

// TrailingIndex returns the index of the "visit website" entry.
func (l *List) TrailingIndex() int { return len(l.items) }

// OnTrailing reports whether the "visit website" entry is selected.
func (l *List) OnTrailing() bool {
	i, ok := l.Selected()
	return ok && i == l.TrailingIndex()
}

// BeginLoad marks a fetch as in flight.
func (l *List) BeginLoad() {
	l.state = Loading{}
}

// Load applies a fetch outcome. On success the items are replaced and the
// selection returns to the first entry; on failure only the state changes.
func (l *List) Load(articles []Article, err error) {
	if err != nil {
		l.state = Failed{Message: err.Error()}
		return
	}
	l.items = articles
	l.state = Loaded{}
	if len(l.items) == 0 {
		l.selected = noSelection
		return
	}
	l.selected = 0
}

// Refresh clears the expanded entries and then applies the fetch outcome.
func (l *List) Refresh(articles []Article, err error) {
	l.CollapseAll()
	l.Load(articles, err)
}

// Next moves the selection down, wrapping past the trailing entry to the top.
func (l *List) Next() {
	if len(l.items) == 0 {
		return
	}
	i, ok := l.Selected()
	switch {
	case !ok:
		l.selected = 0
	case i >= l.TrailingIndex():
		l.selected = 0
	default:
		l.selected = i + 1
	}
}

// Previous moves the selection up, wrapping from the top to the trailing entry.
func (l *List) Previous() {
	if len(l.items) == 0 {
		return
	}
	i, ok := l.Selected()
	switch {
	case !ok:
		l.selected = 0
	case i == 0:
		l.selected = l.TrailingIndex()
	default:
		l.selected = i - 1
	}
}

// GoToFirst selects the first article.
func (l *List) GoToFirst() {
	if len(l.items) == 0 {
		return
	}
	l.selected = 0
}

// GoToLast selects the trailing entry.
func (l *List) GoToLast() {
	if len(l.items) == 0 {
		return
	}
	l.selected = l.TrailingIndex()
}

// PageDown moves the selection down by step, stopping at the trailing entry.
func (l *List) PageDown(step int) {
	if len(l.items) == 0 {
		return
	}
	i, _ := l.Selected()
	l.selected = min(i+step, l.TrailingIndex())
}

// PageUp moves the selection up by step, stopping at the first entry.
func (l *List) PageUp(step int) {
	if len(l.items) == 0 {
		return
	}
	i, _ := l.Selected()
	l.selected = max(i-step, 0)
}

// ToggleExpand flips the expanded state of the selected article.
// The trailing entry cannot be expanded.
func (l *List) ToggleExpand() {
	i, ok := l.Selected()
	if !ok || i == l.TrailingIndex() {
		return
	}
	if _, open := l.expanded[i]; open {
		delete(l.expanded, i)
		return
	}
	l.expanded[i] = struct{}{}
}

// CollapseAll collapses every expanded article.
func (l *List) CollapseAll() {
	clear(l.expanded)
}

// IsExpanded reports whether the article at index i is expanded.
func (l *List) IsExpanded(i int) bool {
	_, ok := l.expanded[i]
	return ok
}

// ExpandedCount returns the number of expanded articles.
func (l *List) ExpandedCount() int { return len(l.expanded) }

// IsSelectedExpanded reports whether the selected article is expanded.
func (l *List) IsSelectedExpanded() bool {
	i, ok := l.Selected()
	return ok && l.IsExpanded(i)
}

// SelectedArticle returns the selected article, if an article is selected.
func (l *List) SelectedArticle() (Article, bool) {
	i, ok := l.Selected()
	if !ok || i >= len(l.items) {
		return Article{}, false
	}
	return l.items[i], true
}
