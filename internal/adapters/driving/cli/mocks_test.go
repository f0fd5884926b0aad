package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sourcebook/internal/adapters/driven/geo/shapefile"
	"github.com/custodia-labs/sourcebook/internal/adapters/driven/storage/embedded"
	"github.com/custodia-labs/sourcebook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sourcebook/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/services"
)

// testEnv exposes the fakes behind the services installed for a test.
type testEnv struct {
	config    *memory.ConfigStore
	opener    *mockOpener
	clipboard *mockClipboard
	features  *mockFeatureSource
}

// setupTestServices installs services over the built-in catalog and resets
// command flags when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	store, err := embedded.NewStore()
	require.NoError(t, err)

	env := &testEnv{
		config:    memory.NewConfigStore(),
		opener:    &mockOpener{},
		clipboard: &mockClipboard{},
		features: &mockFeatureSource{
			buildings: domain.NewFeatureCollection(testBuilding()),
			roads:     domain.NewFeatureCollection(testRoad(), testRoad()),
		},
	}

	SetServices(&Services{
		Catalog:  services.NewCatalogService(store),
		Format:   services.NewFormatService(),
		Theme:    services.NewThemeService(env.config),
		Settings: services.NewSettingsService(env.config),
		MapDemo:  services.NewMapDemoService(env.features, shapefile.NewWriter()),
		Link:     services.NewLinkService(store, env.opener, env.clipboard),
		Export:   services.NewExportService(store, sqlite.NewExporter()),
		Watcher:  env.config,
	})

	oldInteractive := isInteractive
	isInteractive = func() bool { return false }

	t.Cleanup(func() {
		SetServices(nil)
		isInteractive = oldInteractive
		resetFlags()
	})
	return env
}

func resetFlags() {
	verbose = false
	listQuery = ""
	listType = "All"
	listCategory = ""
	listOutput = outputTable
	searchType = "All"
	showOutput = "card"
	categoriesOutput = outputTable
	formatsOutput = outputTable
	mapLayers = nil
	mapGeoJSON = false
	openCopy = false
}

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func testBuilding() domain.Feature {
	return domain.Feature{
		Type:       "Feature",
		Properties: map[string]string{"building": "university", "name": "Science Complex"},
		Geometry: domain.Geometry{Type: domain.GeometryPolygon, Rings: [][]domain.Position{{
			{124.6560, 8.4850}, {124.6570, 8.4850}, {124.6570, 8.4860}, {124.6560, 8.4850},
		}}},
	}
}

func testRoad() domain.Feature {
	return domain.Feature{
		Type:       "Feature",
		Properties: map[string]string{"highway": "primary", "name": "C.M. Recto Avenue"},
		Geometry: domain.Geometry{Type: domain.GeometryLineString, Line: []domain.Position{
			{124.6500, 8.4840}, {124.6650, 8.4845},
		}},
	}
}

// mockOpener records opened URLs.
type mockOpener struct {
	opened []string
	err    error
}

func (m *mockOpener) OpenURL(url string) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, url)
	return nil
}

// mockClipboard keeps the last copied text.
type mockClipboard struct {
	text string
}

func (m *mockClipboard) WriteText(text string) error {
	m.text = text
	return nil
}

// mockFeatureSource serves fixed layers; roadsErr fails the roads fetch only.
type mockFeatureSource struct {
	buildings domain.FeatureCollection
	roads     domain.FeatureCollection
	roadsErr  error
}

func (m *mockFeatureSource) Buildings(context.Context, domain.BBox) (domain.FeatureCollection, error) {
	return m.buildings, nil
}

func (m *mockFeatureSource) Roads(context.Context, domain.BBox) (domain.FeatureCollection, error) {
	if m.roadsErr != nil {
		return domain.FeatureCollection{}, m.roadsErr
	}
	return m.roads, nil
}

var errOverpassDown = errors.New("overpass unavailable")
