// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Name is the preference this palette implements.
	Name domain.Theme

	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DarkTheme returns the dark palette.
func DarkTheme() *Theme {
	return &Theme{
		Name:       domain.ThemeDark,
		Primary:    lipgloss.Color("#10B981"), // Emerald
		Secondary:  lipgloss.Color("#38BDF8"), // Sky
		Background: lipgloss.Color("#0F172A"), // Slate 900
		Foreground: lipgloss.Color("#E2E8F0"), // Slate 200
		Muted:      lipgloss.Color("#64748B"), // Slate 500
		Success:    lipgloss.Color("#A6E3A1"),
		Warning:    lipgloss.Color("#F9E2AF"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#334155"),
		Bar:        lipgloss.Color("#1E293B"),
	}
}

// LightTheme returns the light palette.
func LightTheme() *Theme {
	return &Theme{
		Name:       domain.ThemeLight,
		Primary:    lipgloss.Color("#047857"), // Emerald 700
		Secondary:  lipgloss.Color("#0369A1"), // Sky 700
		Background: lipgloss.Color("#F8FAFC"),
		Foreground: lipgloss.Color("#0F172A"),
		Muted:      lipgloss.Color("#64748B"),
		Success:    lipgloss.Color("#15803D"),
		Warning:    lipgloss.Color("#B45309"),
		Error:      lipgloss.Color("#B91C1C"),
		Border:     lipgloss.Color("#CBD5E1"),
		Bar:        lipgloss.Color("#E2E8F0"),
	}
}

// DefaultTheme returns the palette for domain.DefaultTheme.
func DefaultTheme() *Theme {
	return ThemeFor(domain.DefaultTheme)
}

// ThemeFor returns the palette for a theme preference.
func ThemeFor(t domain.Theme) *Theme {
	if t.IsDark() {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles contains pre-configured lipgloss styles.
// Views share one *Styles, so Apply restyles all of them at once.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style

	// Badge styles for reliability tiers.
	BadgeAcademic lipgloss.Style
	BadgeVerify   lipgloss.Style
	BadgeScore    lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	s := &Styles{}
	s.Apply(theme)
	return s
}

// Apply rebuilds every style in place from theme.
func (s *Styles) Apply(theme *Theme) {
	if theme == nil {
		theme = DefaultTheme()
	}

	*s = Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		BadgeAcademic: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success),

		BadgeVerify: lipgloss.NewStyle().
			Foreground(theme.Warning),

		BadgeScore: lipgloss.NewStyle().
			Foreground(theme.Secondary),
	}
}

// Badge returns the style for a reliability badge.
func (s *Styles) Badge(b domain.Badge) lipgloss.Style {
	switch b {
	case domain.BadgeAcademicGrade:
		return s.BadgeAcademic
	case domain.BadgeVerifyBeforeUse:
		return s.BadgeVerify
	default:
		return s.BadgeScore
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
