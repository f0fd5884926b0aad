package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService copies the catalog into portable stores.
type ExportService struct {
	store    driven.CatalogStore
	exporter driven.CatalogExporter
}

// NewExportService creates a new export service. exporter may be nil.
func NewExportService(store driven.CatalogStore, exporter driven.CatalogExporter) *ExportService {
	return &ExportService{store: store, exporter: exporter}
}

// ExportSQLite writes the whole catalog to a new SQLite database.
func (s *ExportService) ExportSQLite(ctx context.Context, path string) (*domain.ExportReport, error) {
	if s.exporter == nil {
		return nil, fmt.Errorf("sqlite export: %w", domain.ErrUnavailable)
	}
	sources, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	report, err := s.exporter.ExportCatalog(ctx, path, sources)
	if err != nil {
		return nil, fmt.Errorf("sqlite export: %w", err)
	}
	return report, nil
}
