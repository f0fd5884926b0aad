package driving

import "github.com/custodia-labs/sourcebook/internal/core/domain"

// ThemeService owns the persisted theme preference.
type ThemeService interface {
	// Current returns the stored theme, or the default if absent or unrecognised.
	Current() domain.Theme

	// Set persists a theme.
	Set(theme domain.Theme) error

	// Toggle switches between dark and light, persists and returns the new theme.
	Toggle() (domain.Theme, error)
}
