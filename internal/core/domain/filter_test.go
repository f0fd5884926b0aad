package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFilter_ZeroValueIsAll(t *testing.T) {
	var f TypeFilter

	assert.True(t, f.IsAll())
	assert.Equal(t, TypeFilterAll, f)
	assert.Equal(t, "All", f.String())
	assert.Equal(t, "All Types", f.Label())

	_, ok := f.Type()
	assert.False(t, ok)
}

func TestTypeFilter_Matches(t *testing.T) {
	for _, st := range AllSourceTypes() {
		assert.True(t, TypeFilterAll.Matches(st))
	}

	raster := TypeFilterOf(SourceTypeRaster)
	assert.True(t, raster.Matches(SourceTypeRaster))
	assert.False(t, raster.Matches(SourceTypeVector))
	assert.False(t, raster.Matches(SourceTypePointCloud))
}

func TestParseTypeFilter(t *testing.T) {
	tests := []struct {
		input string
		want  TypeFilter
	}{
		{"", TypeFilterAll},
		{"all", TypeFilterAll},
		{"All Types", TypeFilterAll},
		{"vector", TypeFilterOf(SourceTypeVector)},
		{"Point Cloud", TypeFilterOf(SourceTypePointCloud)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTypeFilter(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseTypeFilter("hexagon")
	assert.ErrorIs(t, err, ErrInvalidTypeFilter)
}

func TestTypeFilter_Cycle(t *testing.T) {
	f := TypeFilterAll
	seen := []string{}
	for range AllTypeFilters() {
		f = f.Next()
		seen = append(seen, f.String())
	}

	assert.Equal(t, []string{"Vector", "Raster", "Mixed", "Point Cloud", "All"}, seen)
	assert.Equal(t, TypeFilterOf(SourceTypePointCloud), TypeFilterAll.Prev())
}

func TestTypeFilter_JSON(t *testing.T) {
	state := FilterState{Query: "dem", Type: TypeFilterOf(SourceTypeRaster)}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":"dem","type":"Raster"}`, string(data))

	var decoded FilterState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state, decoded)
}

func TestFilterState_IsActive(t *testing.T) {
	tests := []struct {
		name  string
		state FilterState
		want  bool
	}{
		{"zero value", FilterState{}, false},
		{"query set", FilterState{Query: "ustp"}, true},
		{"whitespace query", FilterState{Query: " "}, true},
		{"type set", FilterState{Type: TypeFilterOf(SourceTypeMixed)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.IsActive())
		})
	}
}

func TestFilterState_Reset(t *testing.T) {
	state := FilterState{Query: "zzzzz", Type: TypeFilterOf(SourceTypeVector)}

	state.Reset()

	assert.Equal(t, "", state.Query)
	assert.True(t, state.Type.IsAll())
	assert.False(t, state.IsActive())
}

func TestFilterResult(t *testing.T) {
	empty := FilterResult{Sources: []Source{}, Total: 20, State: FilterState{Query: "zzzzz"}}
	assert.True(t, empty.Empty())
	assert.True(t, empty.ShowClearFilters())
	assert.Equal(t, "No sources found", empty.Summary())

	some := FilterResult{Sources: []Source{{ID: "ne-002"}}, Total: 20}
	assert.False(t, some.Empty())
	assert.False(t, some.ShowClearFilters())
	assert.Equal(t, "Showing 1 of 20 sources", some.Summary())
}
