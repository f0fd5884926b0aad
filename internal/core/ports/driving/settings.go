package driving

import "github.com/custodia-labs/sourcebook/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, filling in defaults.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Keys returns the configuration keys users may set.
	Keys() []string

	// GetValue returns the effective value of a key as text.
	GetValue(key string) (string, error)

	// SetValue parses, validates and persists a value for a key.
	SetValue(key, value string) error

	// Path returns the configuration file path.
	Path() string
}
