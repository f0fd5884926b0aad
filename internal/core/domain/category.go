package domain

import "strings"

// Category groups catalog sources by theme.
type Category string

// Available categories, in landing page order.
const (
	CategoryBasemaps       Category = "Basemaps"
	CategoryElevation      Category = "Elevation"
	CategoryEnvironment    Category = "Environment"
	CategorySocial         Category = "Social"
	CategoryInfrastructure Category = "Infrastructure"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryBasemaps,
		CategoryElevation,
		CategoryEnvironment,
		CategorySocial,
		CategoryInfrastructure,
	}
}

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	for _, v := range AllCategories() {
		if v == c {
			return true
		}
	}
	return false
}

// String returns the display name.
func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

// CategoryCount pairs a category with the number of sources in it.
type CategoryCount struct {
	Category Category `json:"category" yaml:"category"`
	Count    int      `json:"count" yaml:"count"`
}
