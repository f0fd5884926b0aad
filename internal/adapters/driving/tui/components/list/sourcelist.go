// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// SourceList displays filtered sources in a navigable list.
type SourceList struct {
	sources  []domain.Source
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewSourceList creates a new source list component.
func NewSourceList(s *styles.Styles) *SourceList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &SourceList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the source list.
func (l *SourceList) Init() tea.Cmd {
	return nil
}

// Update handles arrow key navigation.
func (l *SourceList) Update(msg tea.Msg) (*SourceList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible window of the list.
func (l *SourceList) View() string {
	if len(l.sources) == 0 {
		return l.styles.Muted.Render("No sources found")
	}

	// Each source takes two lines.
	visible := (l.height - 1) / 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.sources) {
		end = len(l.sources)
	}

	lines := make([]string, 0, (end-start)*2)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderSource(i, &l.sources[i]))
	}
	return strings.Join(lines, "\n")
}

// renderSource formats one source as a title line and a detail line.
func (l *SourceList) renderSource(index int, src *domain.Source) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	name := truncate(src.Name, l.width-28)
	kind := fmt.Sprintf("[%s]", src.Type)

	var title string
	if index == l.selected {
		title = l.styles.Selected.Render(indicator + name + " " + kind)
	} else {
		title = l.styles.Normal.Render(indicator+name+" ") + l.styles.Muted.Render(kind)
	}

	badge := l.styles.Badge(src.Reliability.Badge()).Render(src.Reliability.BadgeLabel())
	detail := l.styles.Muted.Render(fmt.Sprintf("    %s · %s · ", src.Provider, src.Coverage.Label())) + badge

	return title + "\n" + detail
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// SetSources replaces the list, keeping the selection in range.
func (l *SourceList) SetSources(sources []domain.Source) {
	l.sources = sources
	if l.selected >= len(sources) {
		l.selected = len(sources) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Sources returns the listed sources.
func (l *SourceList) Sources() []domain.Source {
	return l.sources
}

// Selected returns the index of the selected source.
func (l *SourceList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *SourceList) SetSelected(index int) {
	if index >= 0 && index < len(l.sources) {
		l.selected = index
	}
}

// SelectedSource returns the currently selected source, or nil if none.
func (l *SourceList) SelectedSource() *domain.Source {
	if len(l.sources) == 0 || l.selected < 0 || l.selected >= len(l.sources) {
		return nil
	}
	return &l.sources[l.selected]
}

// MoveUp moves selection up.
func (l *SourceList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *SourceList) MoveDown() {
	if l.selected < len(l.sources)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *SourceList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *SourceList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *SourceList) Height() int {
	return l.height
}

// Count returns the number of listed sources.
func (l *SourceList) Count() int {
	return len(l.sources)
}

// IsEmpty returns whether the list is empty.
func (l *SourceList) IsEmpty() bool {
	return len(l.sources) == 0
}
