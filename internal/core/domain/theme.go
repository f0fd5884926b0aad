package domain

import (
	"fmt"
	"strings"
)

// Theme is the persisted colour scheme preference.
type Theme string

// Available themes.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used when no preference is stored or it is unrecognised.
const DefaultTheme = ThemeDark

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// String returns the stored value.
func (t Theme) String() string {
	return string(t)
}

// IsDark reports whether the dark palette applies.
func (t Theme) IsDark() bool {
	return t != ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme validates a user-supplied theme name.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q (want dark or light)", ErrInvalidTheme, s)
	}
	return t, nil
}

// ThemeOrDefault resolves a stored value, falling back to DefaultTheme.
func ThemeOrDefault(stored string) Theme {
	if t, err := ParseTheme(stored); err == nil {
		return t
	}
	return DefaultTheme
}
