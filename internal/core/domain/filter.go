package domain

import (
	"fmt"
	"strings"
)

// TypeFilter narrows the catalog to one source type or to none.
// The zero value is All.
type TypeFilter struct {
	typ SourceType
}

// TypeFilterAll matches every source type.
var TypeFilterAll = TypeFilter{}

// TypeFilterOf returns a filter matching only t.
func TypeFilterOf(t SourceType) TypeFilter {
	return TypeFilter{typ: t}
}

// ParseTypeFilter resolves "", "all" or a source type name.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "all types":
		return TypeFilterAll, nil
	}
	t, err := ParseSourceType(s)
	if err != nil {
		return TypeFilterAll, err
	}
	return TypeFilterOf(t), nil
}

// AllTypeFilters returns All followed by every source type, in cycling order.
func AllTypeFilters() []TypeFilter {
	filters := []TypeFilter{TypeFilterAll}
	for _, t := range AllSourceTypes() {
		filters = append(filters, TypeFilterOf(t))
	}
	return filters
}

// IsAll reports whether the filter matches every type.
func (f TypeFilter) IsAll() bool {
	return f.typ == ""
}

// Type returns the single type matched and false for All.
func (f TypeFilter) Type() (SourceType, bool) {
	return f.typ, !f.IsAll()
}

// Matches reports whether a source of type t passes the filter.
func (f TypeFilter) Matches(t SourceType) bool {
	return f.IsAll() || f.typ == t
}

// String returns "All" or the type name.
func (f TypeFilter) String() string {
	if f.IsAll() {
		return "All"
	}
	return string(f.typ)
}

// Label returns the dropdown label.
func (f TypeFilter) Label() string {
	if f.IsAll() {
		return "All Types"
	}
	return string(f.typ)
}

// Next returns the following filter, wrapping to All.
func (f TypeFilter) Next() TypeFilter {
	return f.shift(1)
}

// Prev returns the preceding filter, wrapping to Point Cloud.
func (f TypeFilter) Prev() TypeFilter {
	return f.shift(-1)
}

func (f TypeFilter) shift(delta int) TypeFilter {
	filters := AllTypeFilters()
	for i, candidate := range filters {
		if candidate == f {
			return filters[(i+delta+len(filters))%len(filters)]
		}
	}
	return TypeFilterAll
}

// MarshalText implements encoding.TextMarshaler.
func (f TypeFilter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *TypeFilter) UnmarshalText(text []byte) error {
	parsed, err := ParseTypeFilter(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// FilterState is the per-session query held by a presentation layer.
type FilterState struct {
	Query string     `json:"query"`
	Type  TypeFilter `json:"type"`
}

// IsActive reports whether any filter narrows the catalog.
// The query is checked untrimmed, so a lone space still counts.
func (s FilterState) IsActive() bool {
	return s.Query != "" || !s.Type.IsAll()
}

// Reset clears the query and type filter.
func (s *FilterState) Reset() {
	*s = FilterState{}
}

// FilterResult is the outcome of applying a FilterState to the catalog.
type FilterResult struct {
	Sources []Source    `json:"sources"`
	Total   int         `json:"total"`
	State   FilterState `json:"state"`
}

// Empty reports a filter run that matched nothing.
func (r FilterResult) Empty() bool {
	return len(r.Sources) == 0
}

// ShowClearFilters reports whether a "clear filters" action should be offered.
func (r FilterResult) ShowClearFilters() bool {
	return r.State.IsActive()
}

// Summary returns the results count line.
func (r FilterResult) Summary() string {
	if r.Empty() {
		return "No sources found"
	}
	return fmt.Sprintf("Showing %d of %d sources", len(r.Sources), r.Total)
}
