package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayerSet(t *testing.T) {
	set := DefaultLayerSet()

	for _, l := range AllLayers() {
		assert.True(t, set.Visible(l), l.String())
	}
	assert.Equal(t, AllLayers(), set.Active())
}

func TestLayerSet_ToggleIsIndependent(t *testing.T) {
	set := DefaultLayerSet().Toggle(LayerRoads)

	assert.True(t, set.Basemap)
	assert.False(t, set.Roads)
	assert.True(t, set.Buildings)

	set = set.Toggle(LayerRoads)
	assert.Equal(t, DefaultLayerSet(), set)
}

func TestLayerSet_AllCombinations(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		set := LayerSet{Basemap: mask&1 != 0, Roads: mask&2 != 0, Buildings: mask&4 != 0}
		assert.Equal(t, set, LayerSetOf(set.Active()...))
	}
}

func TestLayer_Labels(t *testing.T) {
	assert.Equal(t, "Campus Grounds", LayerBasemap.Label())
	assert.Equal(t, "Raster/Basemap", LayerBasemap.Kind())
	assert.Equal(t, "C.M. Recto Ave", LayerRoads.Label())
	assert.Equal(t, "Vector Line", LayerRoads.Kind())
	assert.Equal(t, "USTP Buildings", LayerBuildings.Label())
	assert.Equal(t, "Vector Polygon", LayerBuildings.Kind())
}

func TestParseLayer(t *testing.T) {
	l, err := ParseLayer("Buildings")
	require.NoError(t, err)
	assert.Equal(t, LayerBuildings, l)

	_, err = ParseLayer("rivers")
	assert.ErrorIs(t, err, ErrInvalidLayer)
}
