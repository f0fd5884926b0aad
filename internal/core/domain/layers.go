package domain

import (
	"fmt"
	"strings"
)

// Layer identifies one group in the campus map demo.
type Layer int

// Demo layers, bottom to top.
const (
	LayerBasemap Layer = iota
	LayerRoads
	LayerBuildings
)

// AllLayers returns the demo layers in toggle order.
func AllLayers() []Layer {
	return []Layer{LayerBasemap, LayerRoads, LayerBuildings}
}

// String returns the short layer name.
func (l Layer) String() string {
	switch l {
	case LayerBasemap:
		return "basemap"
	case LayerRoads:
		return "roads"
	case LayerBuildings:
		return "buildings"
	default:
		return "unknown"
	}
}

// Label returns the demo checkbox label.
func (l Layer) Label() string {
	switch l {
	case LayerBasemap:
		return "Campus Grounds"
	case LayerRoads:
		return "C.M. Recto Ave"
	case LayerBuildings:
		return "USTP Buildings"
	default:
		return "Unknown"
	}
}

// Kind returns the GIS data model the layer illustrates.
func (l Layer) Kind() string {
	switch l {
	case LayerBasemap:
		return "Raster/Basemap"
	case LayerRoads:
		return "Vector Line"
	case LayerBuildings:
		return "Vector Polygon"
	default:
		return "Unknown"
	}
}

// ParseLayer resolves a short layer name.
func ParseLayer(s string) (Layer, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, l := range AllLayers() {
		if l.String() == key {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLayer, s)
}

// LayerSet holds the three independent visibility flags of the demo.
type LayerSet struct {
	Basemap   bool `json:"basemap"`
	Roads     bool `json:"roads"`
	Buildings bool `json:"buildings"`
}

// DefaultLayerSet shows every layer.
func DefaultLayerSet() LayerSet {
	return LayerSet{Basemap: true, Roads: true, Buildings: true}
}

// LayerSetOf shows only the given layers.
func LayerSetOf(layers ...Layer) LayerSet {
	var s LayerSet
	for _, l := range layers {
		s = s.With(l, true)
	}
	return s
}

// Visible reports whether a layer is shown.
func (s LayerSet) Visible(l Layer) bool {
	switch l {
	case LayerBasemap:
		return s.Basemap
	case LayerRoads:
		return s.Roads
	case LayerBuildings:
		return s.Buildings
	default:
		return false
	}
}

// With returns a copy with one flag set.
func (s LayerSet) With(l Layer, visible bool) LayerSet {
	switch l {
	case LayerBasemap:
		s.Basemap = visible
	case LayerRoads:
		s.Roads = visible
	case LayerBuildings:
		s.Buildings = visible
	}
	return s
}

// Toggle returns a copy with one flag flipped.
func (s LayerSet) Toggle(l Layer) LayerSet {
	return s.With(l, !s.Visible(l))
}

// Active returns the visible layers in toggle order.
func (s LayerSet) Active() []Layer {
	var active []Layer
	for _, l := range AllLayers() {
		if s.Visible(l) {
			active = append(active, l)
		}
	}
	return active
}
