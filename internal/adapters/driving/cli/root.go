// Package cli implements the sourcebook command line using cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
	"github.com/custodia-labs/sourcebook/internal/logger"
)

var log = logger.With("cli")

// version is set by main at build time.
var version = "dev"

// Root flags.
var (
	verbose     bool
	configDir   string
	catalogPath string
)

// Services wired by main through SetServices or a ServiceFactory.
var (
	catalogService  driving.CatalogService
	formatService   driving.FormatService
	themeService    driving.ThemeService
	settingsService driving.SettingsService
	mapDemoService  driving.MapDemoService
	linkService     driving.LinkService
	exportService   driving.ExportService
	configWatcher   driven.ConfigWatcher
)

// Services bundles the driving ports the commands use.
// Only Catalog and Format are required; commands needing an absent
// service report it as not configured.
type Services struct {
	Catalog  driving.CatalogService
	Format   driving.FormatService
	Theme    driving.ThemeService
	Settings driving.SettingsService
	MapDemo  driving.MapDemoService
	Link     driving.LinkService
	Export   driving.ExportService
	Watcher  driven.ConfigWatcher

	// Close releases resources held by the services. Optional.
	Close func() error
}

// Options carries the resolved root flags to a ServiceFactory.
type Options struct {
	ConfigDir   string
	CatalogPath string
}

// ServiceFactory builds the services once flags are parsed.
type ServiceFactory func(opts Options) (*Services, error)

var (
	serviceFactory ServiceFactory
	closeServices  func() error
)

// isInteractive reports whether both ends of the terminal are a TTY.
var isInteractive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

var rootCmd = &cobra.Command{
	Use:   "sourcebook",
	Short: "GIS Data Sourcebook",
	Long: `sourcebook is a curated catalog of geospatial data sources for students.

Browse, filter and inspect providers of vector, raster and point cloud data,
look up what file formats mean, and explore a small campus map demo.

Run without arguments in a terminal to open the interactive browser.
When output is piped, the catalog is printed as a table instead.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.sourcebook)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "read the catalog from a SQLite export instead of the built-in data")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers the function that builds services after flag parsing.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetServices installs services directly.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	catalogService = s.Catalog
	formatService = s.Format
	themeService = s.Theme
	settingsService = s.Settings
	mapDemoService = s.MapDemo
	linkService = s.Link
	exportService = s.Export
	configWatcher = s.Watcher
	closeServices = s.Close
}

// Execute runs the root command and releases the services afterwards.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a context that commands observe for cancellation.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := teardown(); err == nil {
		err = cerr
	}
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if serviceFactory == nil {
		return nil
	}

	s, err := serviceFactory(Options{ConfigDir: configDir, CatalogPath: catalogPath})
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(s)
	log.Debug("services ready for %s", cmd.CommandPath())
	return nil
}

func teardown() error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	if isInteractive() {
		return runTUI(cmd, args)
	}
	return runList(cmd, nil)
}

// errNotConfigured reports a service main did not wire.
func errNotConfigured(name string) error {
	return errors.New(name + " service not configured")
}
