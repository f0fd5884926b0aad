package domain

import (
	"fmt"
	"strings"
)

// Source is one catalog entry describing an external geospatial data provider.
// Sources are loaded once at startup and never mutated.
type Source struct {
	// ID is the unique identifier for the source (e.g. "ne-002").
	ID string `json:"id" yaml:"id"`

	// Name is the display name of the data source.
	Name string `json:"name" yaml:"name"`

	// Provider is the organisation publishing the data.
	Provider string `json:"provider" yaml:"provider"`

	// Type is the GIS data classification.
	Type SourceType `json:"type" yaml:"type"`

	// Coverage is the geographic extent claimed by the provider.
	Coverage Coverage `json:"coverage" yaml:"coverage"`

	// Formats lists the format tags offered, in display order.
	Formats []string `json:"formats" yaml:"formats"`

	// URL links to the provider. It is never validated or proxied.
	URL string `json:"url" yaml:"url"`

	// Description is a short summary of the data.
	Description string `json:"description" yaml:"description"`

	// Reliability is the editorial trust rating from 1 to 5.
	Reliability Reliability `json:"reliability" yaml:"reliability"`

	// EducativeNote is the "Pro Tip" shown to students.
	EducativeNote string `json:"educative_note" yaml:"educative_note"`

	// Category groups the source on the catalog landing page.
	Category Category `json:"category" yaml:"category"`
}

// Clone returns a deep copy so callers cannot alias the catalog's format slices.
func (s Source) Clone() Source {
	c := s
	c.Formats = append([]string(nil), s.Formats...)
	return c
}

// MatchesQuery reports whether the lowercased, trimmed query is a substring of
// the name, description or provider. An empty query matches every source.
func (s Source) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Name), q) ||
		strings.Contains(strings.ToLower(s.Description), q) ||
		strings.Contains(strings.ToLower(s.Provider), q)
}

// SourceType classifies the geospatial data a source provides.
type SourceType string

// Available source types.
const (
	SourceTypeVector     SourceType = "Vector"
	SourceTypeRaster     SourceType = "Raster"
	SourceTypeMixed      SourceType = "Mixed"
	SourceTypePointCloud SourceType = "Point Cloud"
)

// IsValid returns true if the source type is recognised.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeVector, SourceTypeRaster, SourceTypeMixed, SourceTypePointCloud:
		return true
	default:
		return false
	}
}

// String returns the display value.
func (t SourceType) String() string {
	return string(t)
}

// AllSourceTypes returns all source types in filter order.
func AllSourceTypes() []SourceType {
	return []SourceType{
		SourceTypeVector,
		SourceTypeRaster,
		SourceTypeMixed,
		SourceTypePointCloud,
	}
}

// ParseSourceType resolves a source type name case-insensitively.
// "pointcloud" and "point-cloud" are accepted for Point Cloud.
func ParseSourceType(s string) (SourceType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "pointcloud", "point-cloud", "point_cloud":
		return SourceTypePointCloud, nil
	}
	for _, t := range AllSourceTypes() {
		if strings.ToLower(string(t)) == key {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTypeFilter, s)
}

// Coverage is the geographic extent claimed for a source.
type Coverage string

// Available coverage levels.
const (
	CoverageGlobal   Coverage = "Global"
	CoverageNational Coverage = "National"
	CoverageRegional Coverage = "Regional"
)

// IsValid returns true if the coverage is recognised.
func (c Coverage) IsValid() bool {
	switch c {
	case CoverageGlobal, CoverageNational, CoverageRegional:
		return true
	default:
		return false
	}
}

// Label returns the card label, e.g. "Global Coverage".
func (c Coverage) Label() string {
	return string(c) + " Coverage"
}

// Reliability is an editorial trust score from 1 to 5.
type Reliability int

// Reliability bounds.
const (
	MinReliability Reliability = 1
	MaxReliability Reliability = 5
)

// IsValid returns true if the score is within 1..5.
func (r Reliability) IsValid() bool {
	return r >= MinReliability && r <= MaxReliability
}

// Badge returns the badge tier for the score.
// 5 is Academic Grade, 3 and below need verification, 4 shows the plain score.
func (r Reliability) Badge() Badge {
	switch {
	case r == MaxReliability:
		return BadgeAcademicGrade
	case r <= 3:
		return BadgeVerifyBeforeUse
	default:
		return BadgeScore
	}
}

// BadgeLabel returns the text shown on a source card.
func (r Reliability) BadgeLabel() string {
	switch r.Badge() {
	case BadgeAcademicGrade:
		return "Academic Grade"
	case BadgeVerifyBeforeUse:
		return "Verify Before Use"
	default:
		return fmt.Sprintf("Reliability: %d/5", int(r))
	}
}

// Badge is the reliability badge tier shown on a card.
type Badge int

// Badge tiers.
const (
	BadgeScore Badge = iota
	BadgeAcademicGrade
	BadgeVerifyBeforeUse
)

// String returns the tier name.
func (b Badge) String() string {
	switch b {
	case BadgeAcademicGrade:
		return "academic_grade"
	case BadgeVerifyBeforeUse:
		return "verify_before_use"
	default:
		return "score"
	}
}
