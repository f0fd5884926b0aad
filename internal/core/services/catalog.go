package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService answers catalog queries from a read-only store.
type CatalogService struct {
	store driven.CatalogStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store driven.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// List returns every source in catalog order.
func (s *CatalogService) List(ctx context.Context) ([]domain.Source, error) {
	sources, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

// Get retrieves a source by ID.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Source, error) {
	src, err := s.store.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", id, err)
	}
	return src, nil
}

// Filter applies the query and type filter to the whole catalog.
func (s *CatalogService) Filter(ctx context.Context, state domain.FilterState) (domain.FilterResult, error) {
	sources, err := s.List(ctx)
	if err != nil {
		return domain.FilterResult{}, err
	}
	return domain.FilterResult{
		Sources: FilterSources(sources, state.Query, state.Type),
		Total:   len(sources),
		State:   state,
	}, nil
}

// Categories returns each category with its source count, in display order.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	sources, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := lo.CountValuesBy(sources, func(src domain.Source) domain.Category { return src.Category })
	return lo.Map(domain.AllCategories(), func(c domain.Category, _ int) domain.CategoryCount {
		return domain.CategoryCount{Category: c, Count: counts[c]}
	}), nil
}

// ByCategory returns the sources in a category. Unknown names yield an empty list.
func (s *CatalogService) ByCategory(ctx context.Context, name string) ([]domain.Source, error) {
	category, ok := domain.ParseCategory(name)
	if !ok {
		return []domain.Source{}, nil
	}
	sources, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(sources, func(src domain.Source, _ int) bool {
		return src.Category == category
	}), nil
}

// FilterSources returns the sources matching both the type filter and the
// query, in their original order. The result is never nil.
func FilterSources(sources []domain.Source, query string, filter domain.TypeFilter) []domain.Source {
	matched := lo.Filter(sources, func(src domain.Source, _ int) bool {
		return filter.Matches(src.Type) && src.MatchesQuery(query)
	})
	if matched == nil {
		return []domain.Source{}
	}
	return matched
}
