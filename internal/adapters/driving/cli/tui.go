package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal interface for browsing the sourcebook.

Controls:
  ↑/↓          - Navigate
  Enter        - Select / show details
  Tab          - Cycle the type filter
  Ctrl+L       - Clear filters
  Ctrl+O       - Open source link
  Ctrl+Y       - Copy source link
  1/2/3        - Toggle map layers (Learn GIS)
  Ctrl+T       - Toggle dark/light theme
  Esc          - Back
  Ctrl+C       - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts builds the TUI ports from the configured services.
func tuiPorts() *tui.Ports {
	ports := tui.NewPorts(catalogService, themeService)
	ports.MapDemo = mapDemoService
	ports.Link = linkService
	return ports
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := tui.NewApp(tuiPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	if configWatcher != nil {
		app.WithWatcher(configWatcher)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
