package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func node(id int64, lat, lon float64) Element {
	return Element{Type: "node", ID: id, Lat: ptr(lat), Lon: ptr(lon)}
}

func TestCampusBBox_String(t *testing.T) {
	assert.Equal(t, "8.480,124.650,8.492,124.665", CampusBBox.String())
	assert.True(t, CampusBBox.Contains(CampusCenter.Lat, CampusCenter.Lon))
	assert.False(t, CampusBBox.Contains(14.5995, 120.9842))
}

func TestFeaturesFromElements(t *testing.T) {
	elements := []Element{
		node(1, 8.481, 124.651),
		node(2, 8.482, 124.651),
		node(3, 8.482, 124.652),
		node(4, 8.485, 124.655),
		{Type: "node", ID: 5},
		{Type: "way", ID: 10, Nodes: []int64{1, 2, 3, 1}, Tags: map[string]string{"building": "university", "name": "Science Complex"}},
		{Type: "way", ID: 11, Nodes: []int64{1, 4}, Tags: map[string]string{"highway": "primary", "name": "C.M. Recto Avenue"}},
		{Type: "way", ID: 12, Nodes: []int64{1, 2, 3, 1}},
		{Type: "way", ID: 13, Nodes: []int64{4, 5}},
		{Type: "way", ID: 14},
		{Type: "relation", ID: 20},
	}

	fc := FeaturesFromElements(elements)

	require.Equal(t, 3, fc.Len())
	assert.Equal(t, "FeatureCollection", fc.Type)

	building := fc.Features[0]
	assert.Equal(t, GeometryPolygon, building.Geometry.Type)
	require.Len(t, building.Geometry.Rings, 1)
	assert.Equal(t, Position{124.651, 8.481}, building.Geometry.Rings[0][0])
	assert.Len(t, building.Geometry.Rings[0], 4)
	assert.Equal(t, "Science Complex", building.Properties["name"])

	road := fc.Features[1]
	assert.Equal(t, GeometryLineString, road.Geometry.Type)
	assert.Equal(t, []Position{{124.651, 8.481}, {124.655, 8.485}}, road.Geometry.Line)

	closedWithoutBuilding := fc.Features[2]
	assert.Equal(t, GeometryLineString, closedWithoutBuilding.Geometry.Type)
	assert.NotNil(t, closedWithoutBuilding.Properties)
	assert.Empty(t, closedWithoutBuilding.Properties)
}

func TestFeaturesFromElements_UnresolvedRingEndpoint(t *testing.T) {
	elements := []Element{
		node(2, 1, 2),
		node(3, 2, 2),
		node(4, 2, 1),
		{Type: "way", ID: 10, Nodes: []int64{1, 2, 3, 4, 1}, Tags: map[string]string{"building": "yes"}},
	}

	fc := FeaturesFromElements(elements)

	require.Equal(t, 1, fc.Len())
	geom := fc.Features[0].Geometry
	assert.Equal(t, GeometryLineString, geom.Type)
	assert.Empty(t, geom.Rings)
	assert.Equal(t, []Position{{2, 1}, {2, 2}, {1, 2}}, geom.Line)
}

func TestFeaturesFromElements_TooShortForRing(t *testing.T) {
	elements := []Element{
		node(1, 1, 1),
		node(2, 1, 2),
		{Type: "way", ID: 10, Nodes: []int64{1, 2, 1}, Tags: map[string]string{"building": "yes"}},
	}

	fc := FeaturesFromElements(elements)

	require.Equal(t, 1, fc.Len())
	assert.Equal(t, GeometryLineString, fc.Features[0].Geometry.Type)
}

func TestFeaturesFromElements_Empty(t *testing.T) {
	fc := FeaturesFromElements(nil)

	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}

func TestGeometry_JSONRoundTrip(t *testing.T) {
	f := Feature{
		Type:       "Feature",
		Properties: map[string]string{"building": "yes"},
		Geometry:   Geometry{Type: GeometryPolygon, Rings: [][]Position{{{1, 2}, {3, 4}, {1, 2}}}},
	}

	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Feature","properties":{"building":"yes"},
		"geometry":{"type":"Polygon","coordinates":[[[1,2],[3,4],[1,2]]]}}`, string(data))

	var decoded Feature
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, f, decoded)
}

func TestGeometry_UnsupportedType(t *testing.T) {
	_, err := json.Marshal(Geometry{Type: "Point"})
	assert.Error(t, err)
}

func TestRoadStyleFor(t *testing.T) {
	tests := []struct {
		highway string
		weight  float64
		color   string
	}{
		{"primary", 8, "#f7c96d"},
		{"trunk", 8, "#f7c96d"},
		{"secondary", 6, "#f7c96d"},
		{"tertiary", 5, "#fef3c7"},
		{"living_street", 4, "#ffffff"},
		{"unclassified", 3, "#ffffff"},
		{"footway", 2, "#e8d4c4"},
		{"motorway", 3, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.highway, func(t *testing.T) {
			style := RoadStyleFor(tt.highway)
			assert.Equal(t, tt.weight, style.Weight)
			assert.Equal(t, tt.color, style.Color)
		})
	}
}

func TestMapData_View(t *testing.T) {
	data := MapData{
		Roads:     NewFeatureCollection(Feature{}, Feature{}),
		Buildings: NewFeatureCollection(Feature{}),
	}

	views := data.View(DefaultLayerSet())
	require.Len(t, views, 3)
	assert.Equal(t, 0, views[0].Features)
	assert.Equal(t, 2, views[1].Features)
	assert.Equal(t, 1, views[2].Features)

	views = data.View(LayerSetOf(LayerBuildings))
	require.Len(t, views, 1)
	assert.Equal(t, "USTP Buildings", views[0].Label)

	assert.Empty(t, EmptyMapData().View(LayerSet{}))
}
