// Command sourcebook browses a curated catalog of GIS data sources.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/sourcebook/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sourcebook/internal/adapters/driven/geo/overpass"
	"github.com/custodia-labs/sourcebook/internal/adapters/driven/geo/shapefile"
	"github.com/custodia-labs/sourcebook/internal/adapters/driven/storage/embedded"
	"github.com/custodia-labs/sourcebook/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sourcebook/internal/adapters/driven/system"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/cli"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/core/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services.
func buildServices(opts cli.Options) (*cli.Services, error) {
	config, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, closeStore, err := openCatalog(opts.CatalogPath)
	if err != nil {
		return nil, err
	}

	settingsService := services.NewSettingsService(config)
	settings, err := settingsService.Get()
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	features := overpass.NewClient(overpass.ConfigFromSettings(settings.Overpass))

	return &cli.Services{
		Catalog:  services.NewCatalogService(store),
		Format:   services.NewFormatService(),
		Theme:    services.NewThemeService(config),
		Settings: settingsService,
		MapDemo:  services.NewMapDemoService(features, shapefile.NewWriter()),
		Link:     services.NewLinkService(store, system.NewBrowser(), system.NewClipboard()),
		Export:   services.NewExportService(store, sqlite.NewExporter()),
		Watcher:  config,
		Close:    closeStore,
	}, nil
}

// openCatalog returns the built-in catalog, or a previous SQLite export when path is set.
func openCatalog(path string) (driven.CatalogStore, func() error, error) {
	if path == "" {
		store, err := embedded.NewStore()
		if err != nil {
			return nil, nil, fmt.Errorf("loading built-in catalog: %w", err)
		}
		return store, func() error { return nil }, nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("catalog %s: %w", path, domain.ErrNotFound)
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	return store, store.Close, nil
}
