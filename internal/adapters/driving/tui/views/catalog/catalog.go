// Package catalog provides the filterable source catalog view for the TUI.
package catalog

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sourcebook/internal/content"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
)

// headerLines is the height taken by the title, type chips and query input.
const headerLines = 8

// View shows the query input, type filter, result list and an optional
// detail card for the selected source.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.SourceList
	statusbar *status.Bar
	card      viewport.Model

	catalog driving.CatalogService
	links   driving.LinkService
	ctx     context.Context

	state  domain.FilterState
	result domain.FilterResult
	theme  domain.Theme
	detail bool
	cardID string

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new catalog view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalog driving.CatalogService,
	links driving.LinkService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewQueryInput(s),
		list:      list.NewSourceList(s),
		statusbar: status.NewBar(s, km),
		card:      viewport.New(80, 16),
		catalog:   catalog,
		links:     links,
		ctx:       context.Background(),
		theme:     domain.DefaultTheme,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init runs the current filter and focuses the input.
func (v *View) Init() tea.Cmd {
	v.refresh()
	return tea.Batch(v.input.Focus(), v.input.Init())
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.LinkActioned:
		v.handleLinkActioned(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.Fail(msg.Err)
		return v, nil
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input. Printable keys go to the query.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.closeCard()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "tab":
		v.state.Type = v.state.Type.Next()
		v.refresh()
		return v, nil

	case "shift+tab":
		v.state.Type = v.state.Type.Prev()
		v.refresh()
		return v, nil

	case "up":
		v.list.MoveUp()
		v.syncCard()
		return v, nil

	case "down":
		v.list.MoveDown()
		v.syncCard()
		return v, nil

	case "pgup", "pgdown":
		if v.detail {
			var cmd tea.Cmd
			v.card, cmd = v.card.Update(msg)
			return v, cmd
		}
		return v, nil

	case "enter":
		if v.detail {
			v.closeCard()
		} else if v.list.SelectedSource() != nil {
			v.detail = true
			v.syncCard()
		}
		return v, nil

	case "ctrl+l":
		if v.state.IsActive() {
			v.ClearFilters()
		}
		return v, nil

	case "ctrl+o":
		return v, v.linkCmd(messages.LinkOpened)

	case "ctrl+y":
		return v, v.linkCmd(messages.LinkCopied)
	}

	var cmd tea.Cmd
	var changed bool
	v.input, cmd, changed = v.input.Update(msg)
	if changed {
		v.state.Query = v.input.Value()
		v.refresh()
	}
	return v, cmd
}

// ClearFilters resets the query and type filter.
func (v *View) ClearFilters() {
	v.state.Reset()
	v.input.Reset()
	v.refresh()
}

// refresh re-runs the filter for the current state.
func (v *View) refresh() {
	if v.catalog == nil {
		v.err = ErrNoCatalogService
		v.statusbar.Fail(v.err)
		return
	}

	result, err := v.catalog.Filter(v.ctx, v.state)
	if err != nil {
		v.err = err
		v.statusbar.Fail(err)
		return
	}

	v.err = nil
	v.result = result
	v.list.SetSources(result.Sources)
	v.statusbar.Clear()
	v.statusbar.SetSummary(result.Summary())
	v.statusbar.SetHints(v.keymap.CatalogHelp(result.ShowClearFilters()))
	v.syncCard()
}

// syncCard re-renders the detail card when the selection or theme changed.
func (v *View) syncCard() {
	if !v.detail {
		return
	}
	src := v.list.SelectedSource()
	if src == nil {
		v.closeCard()
		return
	}
	v.cardID = src.ID
	v.card.SetContent(v.renderCard(*src))
	v.card.GotoTop()
}

func (v *View) closeCard() {
	v.detail = false
	v.cardID = ""
}

// renderCard styles the source card, falling back to plain markdown.
func (v *View) renderCard(src domain.Source) string {
	md := content.SourceCard(src)
	out, err := content.Render(md, v.theme, v.card.Width)
	if err != nil {
		return md
	}
	return out
}

// linkCmd opens or copies the selected source's URL off the UI goroutine.
func (v *View) linkCmd(action messages.LinkAction) tea.Cmd {
	src := v.list.SelectedSource()
	if src == nil {
		return nil
	}
	if v.links == nil {
		v.statusbar.Fail(ErrNoLinkService)
		return nil
	}

	ctx, links, id := v.ctx, v.links, src.ID
	return func() tea.Msg {
		var url string
		var err error
		if action == messages.LinkCopied {
			url, err = links.Copy(ctx, id)
		} else {
			url, err = links.Open(ctx, id)
		}
		return messages.LinkActioned{Action: action, URL: url, Err: err}
	}
}

// handleLinkActioned reports a link action in the status bar.
func (v *View) handleLinkActioned(msg messages.LinkActioned) {
	if msg.Err != nil {
		v.statusbar.Fail(msg.Err)
		return
	}
	switch msg.Action {
	case messages.LinkCopied:
		v.statusbar.Notify("Copied " + msg.URL)
	default:
		v.statusbar.Notify("Opened " + msg.URL)
	}
}

// SetTheme re-renders themed content.
func (v *View) SetTheme(theme domain.Theme) {
	v.theme = theme
	v.syncCard()
}

// View renders the catalog view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections,
		v.styles.Title.Render("GIS Data Sourcebook"),
		v.renderTypeChips(),
		v.input.View(),
		"",
	)

	if v.detail {
		sections = append(sections, v.card.View())
	} else {
		sections = append(sections, v.list.View())
	}

	if v.result.ShowClearFilters() && v.result.Empty() {
		sections = append(sections, "", v.styles.Muted.Render("Press ctrl+l to clear filters"))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTypeChips shows every type filter with the active one highlighted.
func (v *View) renderTypeChips() string {
	filters := domain.AllTypeFilters()
	chips := make([]string, 0, len(filters))
	for _, f := range filters {
		if f == v.state.Type {
			chips = append(chips, v.styles.Selected.Render(" "+f.Label()+" "))
		} else {
			chips = append(chips, v.styles.Muted.Render(" "+f.Label()+" "))
		}
	}
	return v.styles.Subtitle.Render("Type: ") + strings.Join(chips, " ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	bodyHeight := height - headerLines
	if bodyHeight < 4 {
		bodyHeight = 4
	}
	v.input.SetWidth(width)
	v.list.SetDimensions(width, bodyHeight)
	v.statusbar.SetWidth(width)
	v.card.Width = width
	v.card.Height = bodyHeight
	v.syncCard()
}

// State returns the current filter state.
func (v *View) State() domain.FilterState {
	return v.state
}

// Result returns the last filter result.
func (v *View) Result() domain.FilterResult {
	return v.result
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.input.Value()
}

// DetailOpen reports whether the source card is shown.
func (v *View) DetailOpen() bool {
	return v.detail
}

// CardSourceID returns the ID of the source shown in the card.
func (v *View) CardSourceID() string {
	return v.cardID
}

// SelectedSource returns the highlighted source, or nil.
func (v *View) SelectedSource() *domain.Source {
	return v.list.SelectedSource()
}

// StatusBar exposes the status bar for inspection.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

