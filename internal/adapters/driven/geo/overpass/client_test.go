package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

const buildingsResponse = `{
  "version": 0.6,
  "elements": [
    {"type": "way", "id": 10, "nodes": [1, 2, 3, 1], "tags": {"building": "university", "name": "Science Complex"}},
    {"type": "node", "id": 1, "lat": 8.4850, "lon": 124.6560},
    {"type": "node", "id": 2, "lat": 8.4850, "lon": 124.6570},
    {"type": "node", "id": 3, "lat": 8.4860, "lon": 124.6570}
  ]
}`

const roadsResponse = `{
  "elements": [
    {"type": "way", "id": 20, "nodes": [4, 5], "tags": {"highway": "primary", "name": "C.M. Recto Avenue"}},
    {"type": "way", "id": 21, "nodes": [4, 99], "tags": {"highway": "service"}},
    {"type": "node", "id": 4, "lat": 8.4840, "lon": 124.6500},
    {"type": "node", "id": 5, "lat": 8.4845, "lon": 124.6650}
  ]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{Endpoint: server.URL + "/api/interpreter", RequestsPerSecond: 100})
}

func TestClient_Buildings(t *testing.T) {
	var gotQuery string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/interpreter", r.URL.Path)
		gotQuery = r.URL.Query().Get("data")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(buildingsResponse))
	})

	fc, err := client.Buildings(context.Background(), domain.CampusBBox)

	require.NoError(t, err)
	assert.Equal(t, BuildingsQuery(domain.CampusBBox), gotQuery)
	require.Equal(t, 1, fc.Len())
	f := fc.Features[0]
	assert.Equal(t, domain.GeometryPolygon, f.Geometry.Type)
	assert.Equal(t, "Science Complex", f.Properties["name"])
	require.Len(t, f.Geometry.Rings, 1)
	assert.Len(t, f.Geometry.Rings[0], 4)
}

func TestClient_Roads_SkipsUnresolvedWays(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("data"), `way["highway"]`)
		_, _ = w.Write([]byte(roadsResponse))
	})

	fc, err := client.Roads(context.Background(), domain.CampusBBox)

	require.NoError(t, err)
	require.Equal(t, 1, fc.Len())
	assert.Equal(t, domain.GeometryLineString, fc.Features[0].Geometry.Type)
	assert.Equal(t, "primary", fc.Features[0].Properties["highway"])
}

func TestClient_Query_StatusError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, strings.Repeat("x", 2048), http.StatusTooManyRequests)
	})

	_, err := client.Query(context.Background(), "[out:json];")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Less(t, len(err.Error()), 700)
}

func TestClient_Query_BadJSON(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	})

	_, err := client.Query(context.Background(), "[out:json];")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_Query_CancelledContext(t *testing.T) {
	var calls atomic.Int32
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"elements": []}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Query(ctx, "[out:json];")

	require.Error(t, err)
	assert.Zero(t, calls.Load())
}

func TestClient_Query_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(server.Close)
	client := NewClient(Config{Endpoint: server.URL, Timeout: 50 * time.Millisecond, RequestsPerSecond: 100})

	_, err := client.Query(context.Background(), "[out:json];")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "send request")
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})

	assert.Equal(t, DefaultEndpoint, client.Endpoint())
	assert.Equal(t, DefaultTimeout, client.client.Timeout)
	assert.Equal(t, float64(DefaultRequestsPerSecond), float64(client.limiter.Limit()))
}

func TestConfigFromSettings(t *testing.T) {
	cfg := ConfigFromSettings(domain.DefaultAppSettings().Overpass)

	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 1, cfg.RequestsPerSecond)
}

func TestQueries(t *testing.T) {
	bbox := domain.CampusBBox

	b := BuildingsQuery(bbox)
	assert.True(t, strings.HasPrefix(b, "[out:json][timeout:25];"))
	assert.Contains(t, b, `way["building"](8.480,124.650,8.492,124.665);`)
	assert.Contains(t, b, `relation["building"](8.480,124.650,8.492,124.665);`)
	assert.True(t, strings.HasSuffix(b, "out skel qt;"))

	r := RoadsQuery(bbox)
	assert.Contains(t, r, `way["highway"](8.480,124.650,8.492,124.665);`)
	assert.NotContains(t, r, "building")
}
