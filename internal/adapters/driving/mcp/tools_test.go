package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/services"
)

func TestServer_handleSearchSources(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	t.Run("query matches", func(t *testing.T) {
		_, out, err := server.handleSearchSources(ctx, nil, SearchInput{Query: "natural"})

		require.NoError(t, err)
		assert.Equal(t, 1, out.Count)
		assert.Equal(t, 20, out.Total)
		assert.Equal(t, "Natural Earth", out.Sources[0].Name)
		assert.Equal(t, "Showing 1 of 20 sources", out.Summary)
	})

	t.Run("type filter", func(t *testing.T) {
		_, out, err := server.handleSearchSources(ctx, nil, SearchInput{Type: "raster"})

		require.NoError(t, err)
		assert.Equal(t, 11, out.Count)
	})

	t.Run("point cloud alias", func(t *testing.T) {
		_, out, err := server.handleSearchSources(ctx, nil, SearchInput{Type: "pointcloud"})

		require.NoError(t, err)
		require.Equal(t, 1, out.Count)
		assert.Equal(t, "openflights-017", out.Sources[0].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		_, out, err := server.handleSearchSources(ctx, nil, SearchInput{Category: "social", Type: "Raster"})

		require.NoError(t, err)
		assert.Equal(t, 2, out.Count)
		for _, src := range out.Sources {
			assert.Equal(t, "Social", src.Category)
		}
	})

	t.Run("unknown category is empty", func(t *testing.T) {
		_, out, err := server.handleSearchSources(ctx, nil, SearchInput{Category: "Oceans"})

		require.NoError(t, err)
		assert.Zero(t, out.Count)
		assert.NotNil(t, out.Sources)
	})

	t.Run("no matches", func(t *testing.T) {
		_, out, err := server.handleSearchSources(ctx, nil, SearchInput{Query: "zzzzz"})

		require.NoError(t, err)
		assert.Equal(t, "No sources found", out.Summary)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, _, err := server.handleSearchSources(ctx, nil, SearchInput{Type: "lidar"})

		assert.ErrorIs(t, err, domain.ErrInvalidTypeFilter)
	})

	t.Run("query too long", func(t *testing.T) {
		_, _, err := server.handleSearchSources(ctx, nil, SearchInput{Query: strings.Repeat("a", 201)})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("catalog failure", func(t *testing.T) {
		failing, err := NewServer(&Ports{Catalog: &mockCatalogService{err: errors.New("db down")}, Format: services.NewFormatService()})
		require.NoError(t, err)

		_, _, err = failing.handleSearchSources(ctx, nil, SearchInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})
}

func TestServer_handleGetSource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, out, err := server.handleGetSource(ctx, nil, GetSourceInput{ID: "gebco-006"})
	require.NoError(t, err)
	assert.Equal(t, "GEBCO Bathymetry", out.Source.Name)
	assert.NotEmpty(t, out.Source.Badge)
	assert.Len(t, out.Formats, len(out.Source.Formats))

	_, _, err = server.handleGetSource(ctx, nil, GetSourceInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = server.handleGetSource(ctx, nil, GetSourceInput{ID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServer_handleDescribeFormat(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	tests := []struct {
		tag       string
		wantTag   string
		wantKnown bool
	}{
		{".shp", ".shp", true},
		{"tif", ".tif", true},
		{" .gpkg ", ".gpkg", true},
		{".las", ".las", false},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			_, out, err := server.handleDescribeFormat(ctx, nil, DescribeFormatInput{Tag: tt.tag})
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, out.Tag)
			assert.Equal(t, tt.wantKnown, out.Known)
		})
	}

	_, _, err := server.handleDescribeFormat(ctx, nil, DescribeFormatInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServer_handleListCategories(t *testing.T) {
	_, out, err := newTestServer(t).handleListCategories(context.Background(), nil, ListCategoriesInput{})

	require.NoError(t, err)
	require.Len(t, out.Categories, 5)
	assert.Equal(t, CategoryOutput{Name: "Basemaps", Count: 4}, out.Categories[0])
}
