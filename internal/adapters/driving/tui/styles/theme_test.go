package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

func TestDefaultTheme_IsDark(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.Equal(t, domain.ThemeDark, theme.Name)
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, domain.ThemeDark, ThemeFor(domain.ThemeDark).Name)
	assert.Equal(t, domain.ThemeLight, ThemeFor(domain.ThemeLight).Name)
	assert.Equal(t, domain.ThemeDark, ThemeFor(domain.Theme("sepia")).Name)
}

func TestThemes_Differ(t *testing.T) {
	dark := DarkTheme()
	light := LightTheme()

	assert.NotEqual(t, dark.Foreground, light.Foreground)
	assert.NotEqual(t, dark.Primary, light.Primary)
	assert.NotEqual(t, dark.Bar, light.Bar)
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s.Theme())
	assert.Equal(t, domain.ThemeDark, s.Theme().Name)
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, DarkTheme().Primary, s.Theme().Primary)
	assert.Equal(t, lipgloss.Color(DarkTheme().Primary), s.Title.GetForeground())
}

func TestStyles_ApplyRestylesInPlace(t *testing.T) {
	s := DefaultStyles()
	shared := s

	s.Apply(LightTheme())

	assert.Equal(t, domain.ThemeLight, shared.Theme().Name)
	assert.Equal(t, lipgloss.Color(LightTheme().Primary), shared.Title.GetForeground())
}

func TestStyles_Badge(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, s.BadgeAcademic.GetForeground(), s.Badge(domain.BadgeAcademicGrade).GetForeground())
	assert.Equal(t, s.BadgeVerify.GetForeground(), s.Badge(domain.BadgeVerifyBeforeUse).GetForeground())
	assert.Equal(t, s.BadgeScore.GetForeground(), s.Badge(domain.BadgeScore).GetForeground())
}
