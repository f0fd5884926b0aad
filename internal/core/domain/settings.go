package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Overpass defaults.
const (
	DefaultOverpassEndpoint          = "https://overpass-api.de/api/interpreter"
	DefaultOverpassTimeoutSeconds    = 30
	DefaultOverpassRequestsPerSecond = 1
)

// OverpassSettings configures the map feature client.
type OverpassSettings struct {
	// Endpoint is the Overpass interpreter URL.
	Endpoint string

	// TimeoutSeconds bounds a single HTTP request.
	TimeoutSeconds int

	// RequestsPerSecond limits how fast queries are issued.
	RequestsPerSecond int
}

// Timeout returns the request timeout as a duration.
func (o OverpassSettings) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

// AppSettings holds the persisted application configuration.
type AppSettings struct {
	// Theme is the colour scheme preference.
	Theme Theme

	// Overpass configures the campus map demo.
	Overpass OverpassSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Theme: DefaultTheme,
		Overpass: OverpassSettings{
			Endpoint:          DefaultOverpassEndpoint,
			TimeoutSeconds:    DefaultOverpassTimeoutSeconds,
			RequestsPerSecond: DefaultOverpassRequestsPerSecond,
		},
	}
}

// Validate checks settings for values the adapters cannot use.
func (s AppSettings) Validate() error {
	if !s.Theme.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, s.Theme)
	}
	u, err := url.Parse(s.Overpass.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: overpass endpoint %q", ErrInvalidInput, s.Overpass.Endpoint)
	}
	if s.Overpass.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: overpass timeout must be positive", ErrInvalidInput)
	}
	if s.Overpass.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: overpass rate must be positive", ErrInvalidInput)
	}
	return nil
}
