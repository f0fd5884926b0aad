package mcp

import (
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Catalog answers source queries.
	Catalog driving.CatalogService

	// Format explains format tags.
	Format driving.FormatService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Format == nil {
		return ErrMissingFormatService
	}
	return nil
}
