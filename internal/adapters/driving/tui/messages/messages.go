// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewCatalog is the filterable source catalog.
	ViewCatalog
	// ViewAbout shows the rating rubric and project team.
	ViewAbout
	// ViewLearn shows the GIS primer and the campus layer demo.
	ViewLearn
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewCatalog:
		return "catalog"
	case ViewAbout:
		return "about"
	case ViewLearn:
		return "learn"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// ThemeChanged carries a new theme to apply to every view.
type ThemeChanged struct {
	Theme domain.Theme
}

// ThemeReloaded signals that the stored theme may have been changed by
// another process and should be read again.
type ThemeReloaded struct{}

// MapLoaded carries the campus layers fetched for the Learn view.
type MapLoaded struct {
	Data domain.MapData
}

// LinkAction names what was done with a source URL.
type LinkAction string

// Link actions.
const (
	LinkOpened LinkAction = "opened"
	LinkCopied LinkAction = "copied"
)

// LinkActioned reports the outcome of opening or copying a source URL.
type LinkActioned struct {
	Action LinkAction
	URL    string
	Err    error
}
