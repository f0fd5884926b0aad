package services

import (
	"fmt"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
)

// Ensure ThemeService implements the interface.
var _ driving.ThemeService = (*ThemeService)(nil)

// keyTheme is the config key holding the theme preference.
const keyTheme = "theme"

// ThemeService reads and writes the theme preference.
// The ConfigStore is the single source of truth; nothing is cached.
type ThemeService struct {
	configStore driven.ConfigStore
}

// NewThemeService creates a new theme service.
func NewThemeService(configStore driven.ConfigStore) *ThemeService {
	return &ThemeService{configStore: configStore}
}

// Current returns the stored theme, defaulting to dark.
func (s *ThemeService) Current() domain.Theme {
	return domain.ThemeOrDefault(s.configStore.GetString(keyTheme))
}

// Set persists a theme.
func (s *ThemeService) Set(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTheme, theme)
	}
	if err := s.configStore.Set(keyTheme, theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Toggle switches to the other theme and persists it.
func (s *ThemeService) Toggle() (domain.Theme, error) {
	next := s.Current().Toggle()
	if err := s.Set(next); err != nil {
		return s.Current(), err
	}
	return next, nil
}
