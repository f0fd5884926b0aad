package content

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// DefaultWidth is the word wrap used when the terminal width is unknown.
const DefaultWidth = 80

// Renderer turns markdown into styled terminal text.
type Renderer struct {
	tr *glamour.TermRenderer
}

// NewRenderer creates a renderer for the theme, wrapping at width columns.
func NewRenderer(theme domain.Theme, width int) (*Renderer, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleFor(theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{tr: tr}, nil
}

// Render styles md.
func (r *Renderer) Render(md string) (string, error) {
	out, err := r.tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// Render is a one-shot helper around NewRenderer.
func Render(md string, theme domain.Theme, width int) (string, error) {
	r, err := NewRenderer(theme, width)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func styleFor(theme domain.Theme) string {
	if theme == domain.ThemeLight {
		return "light"
	}
	return "dark"
}
