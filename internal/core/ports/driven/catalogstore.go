package driven

import (
	"context"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// CatalogStore provides read-only access to the source catalog.
// The catalog is fixed at build time, so there are no write operations.
type CatalogStore interface {
	// List returns every source in catalog order.
	// Implementations return copies; callers may not mutate the catalog.
	List(ctx context.Context) ([]domain.Source, error)

	// Get retrieves a source by ID.
	// Returns domain.ErrNotFound if no source has that ID.
	Get(ctx context.Context, id string) (*domain.Source, error)
}
