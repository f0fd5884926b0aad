package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the colour theme",
	Long: `Show or change the colour theme used by the terminal UI and rendered pages.

The preference is saved to the config file and picked up by a running TUI.`,
	Args: cobra.NoArgs,
	RunE: runThemeShow,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeShow,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between dark and light",
	Args:  cobra.NoArgs,
	RunE:  runThemeToggle,
}

var themeSetCmd = &cobra.Command{
	Use:       "set <dark|light>",
	Short:     "Set the theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.ThemeDark), string(domain.ThemeLight)},
	RunE:      runThemeSet,
}

func init() {
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeSetCmd)
	rootCmd.AddCommand(themeCmd)
}

func runThemeShow(cmd *cobra.Command, _ []string) error {
	if themeService == nil {
		return errNotConfigured("theme")
	}
	cmd.Println(themeService.Current())
	return nil
}

func runThemeToggle(cmd *cobra.Command, _ []string) error {
	if themeService == nil {
		return errNotConfigured("theme")
	}
	next, err := themeService.Toggle()
	if err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	cmd.Printf("Theme set to %s\n", next)
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	if themeService == nil {
		return errNotConfigured("theme")
	}
	theme, err := domain.ParseTheme(args[0])
	if err != nil {
		return err
	}
	if err := themeService.Set(theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	cmd.Printf("Theme set to %s\n", theme)
	return nil
}
