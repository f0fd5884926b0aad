package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/logger"
)

// Ensure Exporter implements the interface.
var _ driven.CatalogExporter = (*Exporter)(nil)

var log = logger.With("sqlite")

// Exporter writes catalogs to new SQLite files.
type Exporter struct {
	now func() time.Time
}

// NewExporter creates a new exporter.
func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

// ExportCatalog writes sources to a new database at path.
// Existing files are never overwritten.
func (e *Exporter) ExportCatalog(ctx context.Context, path string, sources []domain.Source) (*domain.ExportReport, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrAlreadyExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating export directory: %w", err)
		}
	}

	store, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	report := &domain.ExportReport{
		ID:         uuid.NewString(),
		Path:       path,
		Sources:    len(sources),
		ExportedAt: e.now().UTC().Truncate(time.Second),
	}
	if err := store.saveCatalog(ctx, report, sources); err != nil {
		store.Close()
		_ = os.Remove(path)
		return nil, err
	}

	log.Debug("exported %d sources (%d formats) to %s", report.Sources, report.Formats, path)
	return report, nil
}
