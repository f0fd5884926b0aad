package driving

import (
	"context"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// CatalogService answers questions about the source catalog.
type CatalogService interface {
	// List returns every source in catalog order.
	List(ctx context.Context) ([]domain.Source, error)

	// Get retrieves a source by ID.
	Get(ctx context.Context, id string) (*domain.Source, error)

	// Filter applies a query and type filter, preserving catalog order.
	Filter(ctx context.Context, state domain.FilterState) (domain.FilterResult, error)

	// Categories returns each category with its source count.
	Categories(ctx context.Context) ([]domain.CategoryCount, error)

	// ByCategory returns the sources in a category, matched case-insensitively.
	// An unknown category yields an empty list.
	ByCategory(ctx context.Context, name string) ([]domain.Source, error)
}
