package driven

import (
	"context"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// CatalogExporter writes the catalog to a standalone database.
type CatalogExporter interface {
	// ExportCatalog writes sources to a new database at path.
	// Returns domain.ErrAlreadyExists if the path is taken.
	ExportCatalog(ctx context.Context, path string, sources []domain.Source) (*domain.ExportReport, error)
}

// LayerExporter writes map layers to files.
type LayerExporter interface {
	// ExportBuildings writes polygons and returns the main file path.
	ExportBuildings(ctx context.Context, dir string, fc domain.FeatureCollection) (string, error)

	// ExportRoads writes lines and returns the main file path.
	ExportRoads(ctx context.Context, dir string, fc domain.FeatureCollection) (string, error)
}
