package catalog

import "errors"

// Error definitions for the catalog view.
var (
	// ErrNoCatalogService indicates that no catalog service was provided.
	ErrNoCatalogService = errors.New("catalog service is required")

	// ErrNoLinkService indicates that link actions are not wired.
	ErrNoLinkService = errors.New("link actions are not available")
)
