package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
// It preserves insertion order and hands out copies.
type CatalogStore struct {
	mu      sync.RWMutex
	order   []string
	sources map[string]domain.Source
}

// NewCatalogStore creates a catalog holding the given sources in order.
// A later source with a duplicate ID replaces the earlier one in place.
func NewCatalogStore(sources ...domain.Source) *CatalogStore {
	s := &CatalogStore{sources: make(map[string]domain.Source, len(sources))}
	for _, src := range sources {
		if _, ok := s.sources[src.ID]; !ok {
			s.order = append(s.order, src.ID)
		}
		s.sources[src.ID] = src.Clone()
	}
	return s
}

// List returns all sources in insertion order.
func (s *CatalogStore) List(_ context.Context) ([]domain.Source, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Source, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.sources[id].Clone())
	}
	return result, nil
}

// Get retrieves a source by ID.
func (s *CatalogStore) Get(_ context.Context, id string) (*domain.Source, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	source, ok := s.sources[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := source.Clone()
	return &c, nil
}
