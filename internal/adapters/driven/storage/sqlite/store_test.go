package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sourcebook/internal/adapters/driven/storage/embedded"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

func catalogSources(t *testing.T) []domain.Source {
	t.Helper()
	store, err := embedded.NewStore()
	require.NoError(t, err)
	sources, err := store.List(context.Background())
	require.NoError(t, err)
	return sources
}

// exportTestCatalog writes the built-in catalog to a temp file and reopens it.
func exportTestCatalog(t *testing.T) (*Store, *domain.ExportReport) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")

	report, err := NewExporter().ExportCatalog(context.Background(), path, catalogSources(t))
	require.NoError(t, err)

	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	return store, report
}

func TestExporter_ExportCatalog_Report(t *testing.T) {
	sources := catalogSources(t)
	_, report := exportTestCatalog(t)

	_, err := uuid.Parse(report.ID)
	require.NoError(t, err)
	assert.Equal(t, len(sources), report.Sources)

	formats := 0
	for _, s := range sources {
		formats += len(s.Formats)
	}
	assert.Equal(t, formats, report.Formats)
	assert.WithinDuration(t, time.Now(), report.ExportedAt, time.Minute)
}

func TestStore_List_RoundTrip(t *testing.T) {
	store, _ := exportTestCatalog(t)

	got, err := store.List(context.Background())

	require.NoError(t, err)
	if diff := cmp.Diff(catalogSources(t), got); diff != "" {
		t.Errorf("exported catalog differs (-want +got):\n%s", diff)
	}
}

func TestStore_Get(t *testing.T) {
	store, _ := exportTestCatalog(t)
	ctx := context.Background()

	src, err := store.Get(ctx, "gebco-006")
	require.NoError(t, err)
	assert.Equal(t, "GEBCO Bathymetry", src.Name)
	assert.Equal(t, domain.CategoryElevation, src.Category)
	assert.NotEmpty(t, src.Formats)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_LastExport(t *testing.T) {
	store, report := exportTestCatalog(t)

	last, err := store.LastExport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, report.ID, last.ID)
	assert.Equal(t, report.Sources, last.Sources)
	assert.Equal(t, report.Formats, last.Formats)
}

func TestStore_MigrationsIdempotent(t *testing.T) {
	store, _ := exportTestCatalog(t)
	ctx := context.Background()

	v, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	reopened, err := Open(store.Path())
	require.NoError(t, err)
	defer reopened.Close()
	v, err = reopened.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestStore_EmptyDatabase(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	sources, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, sources)
	assert.Empty(t, sources)

	_, err = store.LastExport(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExporter_ExportCatalog_RefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0600))

	_, err := NewExporter().ExportCatalog(context.Background(), path, catalogSources(t))

	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestExporter_ExportCatalog_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "catalog.db")

	_, err := NewExporter().ExportCatalog(context.Background(), path, catalogSources(t)[:2])

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestExporter_ExportCatalog_DuplicateIDRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	src := catalogSources(t)[0]

	_, err := NewExporter().ExportCatalog(context.Background(), path, []domain.Source{src, src})

	require.Error(t, err)
	assert.NoFileExists(t, path)
}
