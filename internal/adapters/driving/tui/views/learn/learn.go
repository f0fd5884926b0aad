// Package learn provides the Learn GIS view with the campus layer demo.
package learn

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/components/page"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sourcebook/internal/content"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
)

// View shows the GIS primer followed by the live status of the campus layers.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	page    *page.Page
	mapDemo driving.MapDemoService
	ctx     context.Context

	layers  domain.LayerSet
	data    domain.MapData
	loading bool
	loaded  bool

	width  int
	height int
	ready  bool
}

// NewView creates a new Learn view. mapDemo may be nil, in which case the
// vector layers stay empty.
func NewView(s *styles.Styles, km *keymap.KeyMap, mapDemo driving.MapDemoService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	v := &View{
		styles:  s,
		keymap:  km,
		page:    page.New(),
		mapDemo: mapDemo,
		ctx:     context.Background(),
		layers:  domain.DefaultLayerSet(),
		data:    domain.EmptyMapData(),
		width:   80,
		height:  24,
	}
	v.page.SetMarkdown(v.markdown(), false)
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the map fetch the first time the view is shown.
func (v *View) Init() tea.Cmd {
	if v.loaded || v.loading || v.mapDemo == nil {
		return nil
	}
	v.loading = true
	v.page.SetMarkdown(v.markdown(), true)

	ctx, svc := v.ctx, v.mapDemo
	return func() tea.Msg {
		return messages.MapLoaded{Data: svc.Load(ctx)}
	}
}

// Update handles messages for the Learn view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.MapLoaded:
		v.data = msg.Data
		v.loading = false
		v.loaded = true
		v.page.SetMarkdown(v.markdown(), true)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "1":
			v.toggle(domain.LayerBasemap)
			return v, nil
		case "2":
			v.toggle(domain.LayerRoads)
			return v, nil
		case "3":
			v.toggle(domain.LayerBuildings)
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.page, cmd = v.page.Update(msg)
	return v, cmd
}

func (v *View) toggle(l domain.Layer) {
	v.layers = v.layers.Toggle(l)
	v.page.SetMarkdown(v.markdown(), true)
}

// markdown assembles the primer and the layer status.
func (v *View) markdown() string {
	var b strings.Builder
	b.WriteString(content.Learn())
	b.WriteString("\n")
	b.WriteString(content.LayerStatus(v.data.View(v.layers), v.loading))
	return b.String()
}

// View renders the page, the layer toggles and a footer.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, v.page.View(), v.renderToggles())
}

// renderToggles shows one checkbox per layer.
func (v *View) renderToggles() string {
	bindings := v.keymap.LearnHelp()
	parts := make([]string, 0, len(bindings))
	for i, l := range domain.AllLayers() {
		box := "[ ]"
		style := v.styles.Muted
		if v.layers.Visible(l) {
			box = "[x]"
			style = v.styles.Normal
		}
		parts = append(parts, style.Render(bindings[i].Help().Key+" "+box+" "+l.Label()))
	}
	if v.loading {
		parts = append(parts, v.styles.Warning.Render("fetching OSM layers..."))
	}
	parts = append(parts, v.styles.Help.Render("[esc] Back"))
	return strings.Join(parts, "  ")
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

// Layers returns the current visibility flags.
func (v *View) Layers() domain.LayerSet {
	return v.layers
}

// Data returns the fetched layers.
func (v *View) Data() domain.MapData {
	return v.data
}

// Loading reports whether the map fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Page exposes the rendered page.
func (v *View) Page() *page.Page {
	return v.page
}
