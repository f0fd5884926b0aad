package driving

import (
	"context"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// ExportService writes the catalog to portable formats.
type ExportService interface {
	// ExportSQLite writes the catalog to a new SQLite database at path.
	ExportSQLite(ctx context.Context, path string) (*domain.ExportReport, error)
}
