// Package page provides a scrollable, themed markdown page for the TUI.
package page

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sourcebook/internal/content"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// Page renders markdown with glamour into a viewport.
type Page struct {
	viewport viewport.Model
	markdown string
	theme    domain.Theme
	err      error
}

// New creates a page with the default theme.
func New() *Page {
	return &Page{
		viewport: viewport.New(80, 20),
		theme:    domain.DefaultTheme,
	}
}

// Update scrolls the page.
func (p *Page) Update(msg tea.Msg) (*Page, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the visible part of the page.
func (p *Page) View() string {
	return p.viewport.View()
}

// SetMarkdown replaces the page source, keeping the scroll position
// when keepOffset is true.
func (p *Page) SetMarkdown(md string, keepOffset bool) {
	p.markdown = md
	offset := p.viewport.YOffset
	p.render()
	if keepOffset {
		p.viewport.SetYOffset(offset)
	} else {
		p.viewport.GotoTop()
	}
}

// SetTheme re-renders the page in a new theme.
func (p *Page) SetTheme(theme domain.Theme) {
	p.theme = theme
	p.render()
}

// SetDimensions resizes the viewport and re-wraps the page.
func (p *Page) SetDimensions(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
	p.render()
}

// render styles the markdown, falling back to the raw text.
func (p *Page) render() {
	out, err := content.Render(p.markdown, p.theme, p.viewport.Width)
	p.err = err
	if err != nil {
		out = p.markdown
	}
	p.viewport.SetContent(out)
}

// Markdown returns the page source.
func (p *Page) Markdown() string {
	return p.markdown
}

// Theme returns the theme in use.
func (p *Page) Theme() domain.Theme {
	return p.theme
}

// ScrollPercent reports how far the page is scrolled.
func (p *Page) ScrollPercent() float64 {
	return p.viewport.ScrollPercent()
}

// YOffset returns the first visible line.
func (p *Page) YOffset() int {
	return p.viewport.YOffset
}

// Err returns the last rendering error.
func (p *Page) Err() error {
	return p.err
}
