package cli

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

func decodeIDs(t *testing.T, out string) []string {
	t.Helper()
	var sources []domain.Source
	require.NoError(t, json.Unmarshal([]byte(out), &sources))
	ids := make([]string, len(sources))
	for i, s := range sources {
		ids[i] = s.ID
	}
	return ids
}

func TestListCmd_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		def       string
	}{
		{"query", "q", ""},
		{"type", "t", "All"},
		{"category", "c", ""},
		{"output", "o", "table"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := listCmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.def, flag.DefValue)
		})
	}
}

func TestListCmd_Table(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "RELIABILITY")
	assert.Contains(t, out, "ne-002")
	assert.Contains(t, out, "Showing 20 of 20 sources")
}

func TestListCmd_QueryJSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list", "-q", "natural", "-o", "json")

	require.NoError(t, err)
	if diff := cmp.Diff([]string{"ne-002"}, decodeIDs(t, out)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestListCmd_TypeFilter(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list", "-t", "raster", "-o", "json")

	require.NoError(t, err)
	ids := decodeIDs(t, out)
	assert.Len(t, ids, 11)
	assert.Contains(t, ids, "esri-003")
	assert.NotContains(t, ids, "osm-001")
}

func TestListCmd_QueryAndTypeCombine(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list", "-q", "natural", "-t", "raster", "-o", "json")

	require.NoError(t, err)
	assert.Empty(t, decodeIDs(t, out))
}

func TestListCmd_Category(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list", "-c", "basemaps", "-o", "json")

	require.NoError(t, err)
	want := []string{"osm-001", "ne-002", "esri-003", "carto-004"}
	if diff := cmp.Diff(want, decodeIDs(t, out)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestListCmd_UnknownCategory(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "list", "-c", "oceans")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListCmd_InvalidType(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "list", "-t", "hologram")

	assert.Error(t, err)
}

func TestListCmd_InvalidOutput(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "list", "-o", "xml")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListCmd_NoMatches(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list", "-q", "zzzzz")

	require.NoError(t, err)
	assert.Contains(t, out, "No sources found")
	assert.Contains(t, out, "Clear the query")
}

func TestListCmd_YAML(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list", "-q", "natural", "-o", "yaml")

	require.NoError(t, err)
	var sources []domain.Source
	require.NoError(t, yaml.Unmarshal([]byte(out), &sources))
	require.Len(t, sources, 1)
	assert.Equal(t, "Natural Earth", sources[0].Name)
	assert.Equal(t, domain.CategoryBasemaps, sources[0].Category)
}

func TestListCmd_CSV(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list", "-o", "csv")

	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 21)
	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "osm-001", records[1][0])
	assert.Equal(t, ".osm .pbf .geojson .shp", records[1][7])
}

func TestListCmd_ServiceNotConfigured(t *testing.T) {
	setupTestServices(t)
	SetServices(nil)

	_, err := execute(t, "list")

	assert.EqualError(t, err, "catalog service not configured")
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "search")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_Query(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "search", "natural")

	require.NoError(t, err)
	assert.Contains(t, out, "Natural Earth")
	assert.Contains(t, out, "Showing 1 of 20 sources")
}

func TestSearchCmd_TypeFlag(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "search", "natural", "-t", "Vector")

	require.NoError(t, err)
	assert.Contains(t, out, "ne-002")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer description", 10, "a longer …"},
		{"Ñandú über", 5, "Ñand…"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.width))
		})
	}
}
