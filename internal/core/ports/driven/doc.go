// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CatalogStore: Read-only access to the embedded source catalog
//   - ConfigStore: Application configuration (theme preference, Overpass settings)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - FeatureSource: Map features for the campus demo. Without it, layers render empty.
//   - URLOpener, Clipboard: Link-out actions. Without them, open/copy report unavailable.
//   - CatalogExporter, LayerExporter: Export targets for the CLI.
//   - ConfigWatcher: Notifies about external config edits.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
