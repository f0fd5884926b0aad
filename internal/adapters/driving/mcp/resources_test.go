package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/services"
)

func TestExtractSourceID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid source URI", "sourcebook://sources/ne-002", "ne-002"},
		{"invalid prefix", "file://sources/ne-002", ""},
		{"nested path", "sourcebook://sources/ne-002/formats", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSourceID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleSourcesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the catalog", func(t *testing.T) {
		result, err := newTestServer(t).handleSourcesResource(ctx, makeReadResourceRequest("sourcebook://sources"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var out []SourceOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &out))
		assert.Len(t, out, 20)
		assert.Equal(t, "osm-001", out[0].ID)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Catalog: &mockCatalogService{err: errors.New("database error")}, Format: services.NewFormatService()})
		require.NoError(t, err)

		_, err = server.handleSourcesResource(ctx, makeReadResourceRequest("sourcebook://sources"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing sources")
	})
}

func TestServer_handleSourceResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	result, err := server.handleSourceResource(ctx, makeReadResourceRequest("sourcebook://sources/wdpa-012"))
	require.NoError(t, err)
	assert.Contains(t, result.Contents[0].Text, "World Database on Protected Areas")

	_, err = server.handleSourceResource(ctx, makeReadResourceRequest("sourcebook://sources/"))
	assert.Error(t, err)

	_, err = server.handleSourceResource(ctx, makeReadResourceRequest("sourcebook://sources/unknown"))
	assert.Error(t, err)
}

func TestServer_handleFormatsResource(t *testing.T) {
	result, err := newTestServer(t).handleFormatsResource(context.Background(), makeReadResourceRequest("sourcebook://formats"))

	require.NoError(t, err)
	var sections []domain.FormatSection
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &sections))
	assert.Len(t, sections, 4)
}

func TestPageHandler(t *testing.T) {
	handler := pageHandler(func() string { return "# Page" })

	result, err := handler(context.Background(), makeReadResourceRequest("sourcebook://pages/x"))

	require.NoError(t, err)
	assert.Equal(t, "# Page", result.Contents[0].Text)
	assert.Equal(t, "text/markdown", result.Contents[0].MIMEType)
}
