// Package tui provides an interactive terminal user interface for the sourcebook.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog filters and looks up sources.
	Catalog driving.CatalogService

	// Theme persists the colour scheme.
	Theme driving.ThemeService

	// MapDemo loads the campus layers for the Learn view. Optional.
	MapDemo driving.MapDemoService

	// Link opens or copies source URLs. Optional.
	Link driving.LinkService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(catalog driving.CatalogService, theme driving.ThemeService) *Ports {
	return &Ports{
		Catalog: catalog,
		Theme:   theme,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Theme == nil {
		return ErrMissingThemeService
	}
	return nil
}
