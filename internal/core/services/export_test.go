package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sourcebook/internal/adapters/driven/storage/embedded"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

func TestExportService_ExportSQLite(t *testing.T) {
	store, err := embedded.NewStore()
	require.NoError(t, err)
	exporter := &recordingCatalogExporter{}
	service := NewExportService(store, exporter)
	path := filepath.Join(t.TempDir(), "catalog.db")

	report, err := service.ExportSQLite(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, path, report.Path)
	assert.Equal(t, 20, report.Sources)
	assert.Len(t, exporter.sources, 20)
	assert.Equal(t, "osm-001", exporter.sources[0].ID)
}

func TestExportService_ExportSQLite_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewExportService(failingCatalogStore{}, nil).ExportSQLite(ctx, "x.db")
	require.ErrorIs(t, err, domain.ErrUnavailable)

	_, err = NewExportService(failingCatalogStore{}, &recordingCatalogExporter{}).ExportSQLite(ctx, "x.db")
	require.ErrorIs(t, err, errBoom)

	store, err := embedded.NewStore()
	require.NoError(t, err)
	_, err = NewExportService(store, &recordingCatalogExporter{err: domain.ErrAlreadyExists}).ExportSQLite(ctx, "x.db")
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}
