package domain

import (
	"encoding/json"
	"fmt"
)

// BBox is a south,west,north,east bounding box in degrees.
type BBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// String formats the box the way Overpass QL expects it.
func (b BBox) String() string {
	return fmt.Sprintf("%.3f,%.3f,%.3f,%.3f", b.South, b.West, b.North, b.East)
}

// Contains reports whether a point lies inside the box.
func (b BBox) Contains(lat, lon float64) bool {
	return lat >= b.South && lat <= b.North && lon >= b.West && lon <= b.East
}

// LatLng is a WGS84 coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Campus demo constants for USTP Cagayan de Oro.
var (
	CampusBBox   = BBox{South: 8.480, West: 124.650, North: 8.492, East: 124.665}
	CampusCenter = LatLng{Lat: 8.4857, Lon: 124.6567}
)

// CampusZoom is the initial zoom level of the campus map.
const CampusZoom = 17

// Element is one item of an Overpass JSON response.
type Element struct {
	Type  string            `json:"type"`
	ID    int64             `json:"id"`
	Lat   *float64          `json:"lat,omitempty"`
	Lon   *float64          `json:"lon,omitempty"`
	Nodes []int64           `json:"nodes,omitempty"`
	Tags  map[string]string `json:"tags,omitempty"`
}

// Position is a GeoJSON [lon, lat] pair.
type Position [2]float64

// GeometryType names a GeoJSON geometry.
type GeometryType string

// Supported geometry types.
const (
	GeometryLineString GeometryType = "LineString"
	GeometryPolygon    GeometryType = "Polygon"
)

// Geometry is a LineString or a Polygon.
type Geometry struct {
	Type GeometryType
	// Line holds LineString coordinates.
	Line []Position
	// Rings holds Polygon coordinates, outer ring first.
	Rings [][]Position
}

type geometryJSON struct {
	Type        GeometryType    `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// MarshalJSON emits GeoJSON.
func (g Geometry) MarshalJSON() ([]byte, error) {
	var coords any
	switch g.Type {
	case GeometryLineString:
		coords = g.Line
	case GeometryPolygon:
		coords = g.Rings
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", g.Type)
	}
	raw, err := json.Marshal(coords)
	if err != nil {
		return nil, err
	}
	return json.Marshal(geometryJSON{Type: g.Type, Coordinates: raw})
}

// UnmarshalJSON parses GeoJSON LineString and Polygon geometries.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var raw geometryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*g = Geometry{Type: raw.Type}
	switch raw.Type {
	case GeometryLineString:
		return json.Unmarshal(raw.Coordinates, &g.Line)
	case GeometryPolygon:
		return json.Unmarshal(raw.Coordinates, &g.Rings)
	default:
		return fmt.Errorf("unsupported geometry type %q", raw.Type)
	}
}

// Feature is a GeoJSON feature with string properties.
type Feature struct {
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties"`
	Geometry   Geometry          `json:"geometry"`
}

// FeatureCollection is a GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection returns a collection that encodes an empty list as [].
func NewFeatureCollection(features ...Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

// Len returns the number of features.
func (fc FeatureCollection) Len() int {
	return len(fc.Features)
}

// FeaturesFromElements converts Overpass elements to GeoJSON.
// Nodes are indexed first. Each way with more than one resolvable node becomes
// a Polygon when its resolved ring is closed with at least four positions and
// it is tagged as a building, otherwise a LineString.
func FeaturesFromElements(elements []Element) FeatureCollection {
	nodes := make(map[int64]Position)
	for _, el := range elements {
		if el.Type == "node" && el.Lat != nil && el.Lon != nil {
			nodes[el.ID] = Position{*el.Lon, *el.Lat}
		}
	}

	features := []Feature{}
	for _, el := range elements {
		if el.Type != "way" || len(el.Nodes) == 0 {
			continue
		}
		coords := make([]Position, 0, len(el.Nodes))
		for _, id := range el.Nodes {
			if p, ok := nodes[id]; ok {
				coords = append(coords, p)
			}
		}
		if len(coords) <= 1 {
			continue
		}

		props := make(map[string]string, len(el.Tags))
		for k, v := range el.Tags {
			props[k] = v
		}

		closed := len(coords) >= 4 && coords[0] == coords[len(coords)-1]
		geom := Geometry{Type: GeometryLineString, Line: coords}
		if closed && el.Tags["building"] != "" {
			geom = Geometry{Type: GeometryPolygon, Rings: [][]Position{coords}}
		}
		features = append(features, Feature{Type: "Feature", Properties: props, Geometry: geom})
	}
	return NewFeatureCollection(features...)
}

// PathStyle describes how a line or polygon outline is drawn.
type PathStyle struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fill_color,omitempty"`
	Weight      float64 `json:"weight"`
	Opacity     float64 `json:"opacity"`
	FillOpacity float64 `json:"fill_opacity,omitempty"`
}

// BuildingStyle is the style for building polygons.
var BuildingStyle = PathStyle{
	FillColor:   "#d9d0c9",
	Color:       "#b8b0a8",
	Weight:      1.5,
	Opacity:     1,
	FillOpacity: 0.85,
}

// RoadStyleFor returns the style for an OSM highway class.
func RoadStyleFor(highway string) PathStyle {
	switch highway {
	case "primary", "trunk":
		return PathStyle{Color: "#f7c96d", Weight: 8, Opacity: 1}
	case "secondary":
		return PathStyle{Color: "#f7c96d", Weight: 6, Opacity: 1}
	case "tertiary":
		return PathStyle{Color: "#fef3c7", Weight: 5, Opacity: 1}
	case "residential", "living_street":
		return PathStyle{Color: "#ffffff", Weight: 4, Opacity: 0.95}
	case "service", "unclassified":
		return PathStyle{Color: "#ffffff", Weight: 3, Opacity: 0.9}
	case "footway", "path", "pedestrian":
		return PathStyle{Color: "#e8d4c4", Weight: 2, Opacity: 0.8}
	default:
		return PathStyle{Color: "#ffffff", Weight: 3, Opacity: 0.9}
	}
}

// MapData holds the fetched vector layers of the campus demo.
// A layer whose fetch failed is an empty collection.
type MapData struct {
	Buildings FeatureCollection `json:"buildings"`
	Roads     FeatureCollection `json:"roads"`
}

// EmptyMapData returns data with both layers empty.
func EmptyMapData() MapData {
	return MapData{Buildings: NewFeatureCollection(), Roads: NewFeatureCollection()}
}

// LayerView describes one visible layer for rendering.
type LayerView struct {
	Layer    Layer  `json:"-"`
	Name     string `json:"name"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Features int    `json:"features"`
}

// View returns the visible layers with the number of features each would draw.
// The basemap is tiled imagery and carries no features.
func (d MapData) View(layers LayerSet) []LayerView {
	views := make([]LayerView, 0, 3)
	for _, l := range layers.Active() {
		v := LayerView{Layer: l, Name: l.String(), Label: l.Label(), Kind: l.Kind()}
		switch l {
		case LayerRoads:
			v.Features = d.Roads.Len()
		case LayerBuildings:
			v.Features = d.Buildings.Len()
		}
		views = append(views, v)
	}
	return views
}
