// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// ToggleTheme switches between dark and light.
	ToggleTheme key.Binding

	// Back returns to the menu.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select opens or closes the source card.
	Select key.Binding

	// NextType cycles the type filter forward.
	NextType key.Binding

	// PrevType cycles the type filter backward.
	PrevType key.Binding

	// ClearFilters resets the query and type filter.
	ClearFilters key.Binding

	// OpenLink opens the selected source in the browser.
	OpenLink key.Binding

	// CopyLink copies the selected source URL.
	CopyLink key.Binding

	// Basemap, Roads and Buildings toggle the campus demo layers.
	Basemap   key.Binding
	Roads     key.Binding
	Buildings key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		NextType: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "type"),
		),
		PrevType: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev type"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear filters"),
		),
		OpenLink: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy link"),
		),
		Basemap: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "basemap"),
		),
		Roads: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "roads"),
		),
		Buildings: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "buildings"),
		),
	}
}

// ShortHelp returns the global keybindings.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.ToggleTheme, k.Quit}
}

// CatalogHelp returns keybindings for the catalog view.
// The clear binding is offered only while a filter is active.
func (k *KeyMap) CatalogHelp(filtersActive bool) []key.Binding {
	bindings := []key.Binding{k.NextType, k.Select, k.OpenLink, k.CopyLink}
	if filtersActive {
		bindings = append(bindings, k.ClearFilters)
	}
	return append(bindings, k.Back)
}

// LearnHelp returns keybindings for the Learn view.
func (k *KeyMap) LearnHelp() []key.Binding {
	return []key.Binding{k.Basemap, k.Roads, k.Buildings, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.NextType, k.PrevType, k.ClearFilters},
		{k.OpenLink, k.CopyLink},
		{k.Basemap, k.Roads, k.Buildings},
		{k.Back, k.ToggleTheme, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
