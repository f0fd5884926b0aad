// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// sourcebook catalog. It lets AI assistants search sources, explain format
// tags and read the About and Learn GIS pages.
package mcp

import "errors"

var (
	// ErrMissingCatalogService is returned when the catalog service is not provided.
	ErrMissingCatalogService = errors.New("mcp: catalog service is required")

	// ErrMissingFormatService is returned when the format service is not provided.
	ErrMissingFormatService = errors.New("mcp: format service is required")
)
