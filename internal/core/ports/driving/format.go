package driving

import "github.com/custodia-labs/sourcebook/internal/core/domain"

// FormatService explains format tags.
type FormatService interface {
	// Describe returns the tooltip for a tag. It never fails.
	Describe(tag string) domain.Format

	// DescribeAll describes tags in the order given.
	DescribeAll(tags []string) []domain.Format

	// Cheatsheet returns every known format, grouped.
	Cheatsheet() []domain.FormatSection
}
