package services

import (
	"github.com/samber/lo"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
)

// Ensure FormatService implements the interface.
var _ driving.FormatService = (*FormatService)(nil)

// FormatService explains format tags using the built-in tooltip table.
type FormatService struct{}

// NewFormatService creates a new format service.
func NewFormatService() *FormatService {
	return &FormatService{}
}

// Describe returns the tooltip for a tag.
func (s *FormatService) Describe(tag string) domain.Format {
	return domain.DescribeFormat(tag)
}

// DescribeAll describes tags in the order given, keeping duplicates.
func (s *FormatService) DescribeAll(tags []string) []domain.Format {
	return lo.Map(tags, func(tag string, _ int) domain.Format {
		return domain.DescribeFormat(tag)
	})
}

// Cheatsheet returns every known format, grouped.
func (s *FormatService) Cheatsheet() []domain.FormatSection {
	return domain.KnownFormats()
}
