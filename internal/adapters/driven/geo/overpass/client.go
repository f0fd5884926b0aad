// Package overpass fetches OpenStreetMap features from an Overpass API
// interpreter and converts them to GeoJSON.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/motemen/go-loghttp"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.FeatureSource = (*Client)(nil)

var log = logger.With("overpass")

// Default configuration values.
const (
	DefaultEndpoint          = domain.DefaultOverpassEndpoint
	DefaultTimeout           = domain.DefaultOverpassTimeoutSeconds * time.Second
	DefaultRequestsPerSecond = domain.DefaultOverpassRequestsPerSecond

	// maxErrorBody caps how much of a failed response is quoted in errors.
	maxErrorBody = 512
)

// Config holds configuration for the Overpass client.
type Config struct {
	// Endpoint is the interpreter URL (default: overpass-api.de).
	Endpoint string

	// Timeout bounds a single request (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond limits query rate (default: 1).
	RequestsPerSecond int

	// Transport overrides the base round tripper. Tests use it.
	Transport http.RoundTripper
}

// ConfigFromSettings maps persisted settings to a client config.
func ConfigFromSettings(s domain.OverpassSettings) Config {
	return Config{
		Endpoint:          s.Endpoint,
		Timeout:           s.Timeout(),
		RequestsPerSecond: s.RequestsPerSecond,
	}
}

// Client queries an Overpass interpreter.
type Client struct {
	client   *http.Client
	endpoint string
	limiter  *rate.Limiter
}

// response is the Overpass JSON output format.
type response struct {
	Elements []domain.Element `json:"elements"`
	Remark   string           `json:"remark,omitempty"`
}

// NewClient creates a new Overpass client.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &loghttp.Transport{
				Transport: base,
				LogRequest: func(req *http.Request) {
					log.Debug("%s %s", req.Method, req.URL.Host+req.URL.Path)
				},
				LogResponse: func(resp *http.Response) {
					log.Debug("%s %s -> %s", resp.Request.Method, resp.Request.URL.Host+resp.Request.URL.Path, resp.Status)
				},
			},
		},
		endpoint: cfg.Endpoint,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}
}

// Endpoint returns the interpreter URL in use.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Buildings fetches building ways and relations inside bbox.
func (c *Client) Buildings(ctx context.Context, bbox domain.BBox) (domain.FeatureCollection, error) {
	return c.features(ctx, BuildingsQuery(bbox))
}

// Roads fetches highway ways inside bbox.
func (c *Client) Roads(ctx context.Context, bbox domain.BBox) (domain.FeatureCollection, error) {
	return c.features(ctx, RoadsQuery(bbox))
}

func (c *Client) features(ctx context.Context, query string) (domain.FeatureCollection, error) {
	elements, err := c.Query(ctx, query)
	if err != nil {
		return domain.FeatureCollection{}, err
	}
	return domain.FeaturesFromElements(elements), nil
}

// Query runs an Overpass QL query and returns the raw elements.
func (c *Client) Query(ctx context.Context, query string) ([]domain.Element, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("data", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err != nil {
			return nil, fmt.Errorf("overpass error (status %d): failed to read response", resp.StatusCode)
		}
		return nil, fmt.Errorf("overpass error (status %d): %s", resp.StatusCode, string(body))
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Remark != "" {
		log.Warn("server remark: %s", out.Remark)
	}
	return out.Elements, nil
}
