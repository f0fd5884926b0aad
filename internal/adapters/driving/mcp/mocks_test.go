package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sourcebook/internal/adapters/driven/storage/embedded"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/services"
)

// mockCatalogService is a mock implementation of driving.CatalogService
// that fails every call with err.
type mockCatalogService struct {
	err error
}

func (m *mockCatalogService) List(context.Context) ([]domain.Source, error) {
	return nil, m.err
}

func (m *mockCatalogService) Get(context.Context, string) (*domain.Source, error) {
	return nil, m.err
}

func (m *mockCatalogService) Filter(context.Context, domain.FilterState) (domain.FilterResult, error) {
	return domain.FilterResult{}, m.err
}

func (m *mockCatalogService) Categories(context.Context) ([]domain.CategoryCount, error) {
	return nil, m.err
}

func (m *mockCatalogService) ByCategory(context.Context, string) ([]domain.Source, error) {
	return nil, m.err
}

// newTestServer builds a server over the built-in catalog.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := embedded.NewStore()
	require.NoError(t, err)
	server, err := NewServer(&Ports{
		Catalog: services.NewCatalogService(store),
		Format:  services.NewFormatService(),
	})
	require.NoError(t, err)
	return server
}
