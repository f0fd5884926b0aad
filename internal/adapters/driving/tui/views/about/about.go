// Package about provides the About page view for the TUI.
package about

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/components/page"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sourcebook/internal/content"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// View shows the rating rubric and project team.
type View struct {
	styles *styles.Styles
	page   *page.Page
	width  int
	height int
	ready  bool
}

// NewView creates a new About view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	p := page.New()
	p.SetMarkdown(content.About(), false)
	return &View{
		styles: s,
		page:   p,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the About view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}

	var cmd tea.Cmd
	v.page, cmd = v.page.Update(msg)
	return v, cmd
}

// View renders the page with a footer.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	footer := v.styles.Help.Render(fmt.Sprintf("%3.f%%  [↑/↓] Scroll  [esc] Back", v.page.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, v.page.View(), footer)
}

// SetTheme re-renders the page.
func (v *View) SetTheme(theme domain.Theme) {
	v.page.SetTheme(theme)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.page.SetDimensions(width, max(height-2, 3))
}

// Page exposes the rendered page.
func (v *View) Page() *page.Page {
	return v.page
}
