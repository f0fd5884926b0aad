package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOverpassEndpoint = "overpass.endpoint"
	keyOverpassTimeout  = "overpass.timeout_seconds"
	keyOverpassRate     = "overpass.requests_per_second"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Theme: domain.ThemeOrDefault(s.configStore.GetString(keyTheme)),
		Overpass: domain.OverpassSettings{
			Endpoint:          s.getString(keyOverpassEndpoint, defaults.Overpass.Endpoint),
			TimeoutSeconds:    s.getPositiveInt(keyOverpassTimeout, defaults.Overpass.TimeoutSeconds),
			RequestsPerSecond: s.getPositiveInt(keyOverpassRate, defaults.Overpass.RequestsPerSecond),
		},
	}, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(keyTheme, settings.Theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	if err := s.configStore.Set(keyOverpassEndpoint, settings.Overpass.Endpoint); err != nil {
		return fmt.Errorf("save overpass endpoint: %w", err)
	}
	if err := s.configStore.Set(keyOverpassTimeout, settings.Overpass.TimeoutSeconds); err != nil {
		return fmt.Errorf("save overpass timeout: %w", err)
	}
	if err := s.configStore.Set(keyOverpassRate, settings.Overpass.RequestsPerSecond); err != nil {
		return fmt.Errorf("save overpass rate: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Keys returns the configuration keys users may set.
func (s *SettingsService) Keys() []string {
	return []string{keyTheme, keyOverpassEndpoint, keyOverpassTimeout, keyOverpassRate}
}

// GetValue returns the effective value of a key.
func (s *SettingsService) GetValue(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}
	switch key {
	case keyTheme:
		return settings.Theme.String(), nil
	case keyOverpassEndpoint:
		return settings.Overpass.Endpoint, nil
	case keyOverpassTimeout:
		return strconv.Itoa(settings.Overpass.TimeoutSeconds), nil
	case keyOverpassRate:
		return strconv.Itoa(settings.Overpass.RequestsPerSecond), nil
	default:
		return "", fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, key)
	}
}

// SetValue parses a textual value, validates the resulting settings and saves them.
func (s *SettingsService) SetValue(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyTheme:
		theme, err := domain.ParseTheme(value)
		if err != nil {
			return err
		}
		settings.Theme = theme
	case keyOverpassEndpoint:
		settings.Overpass.Endpoint = value
	case keyOverpassTimeout:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		settings.Overpass.TimeoutSeconds = n
	case keyOverpassRate:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		settings.Overpass.RequestsPerSecond = n
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}
