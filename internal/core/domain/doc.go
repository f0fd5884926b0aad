// Package domain defines the core entities of the GIS data sourcebook.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Source: A curated catalog entry pointing at an external data provider
//   - TypeFilter: The All-or-one-type variant used to narrow the catalog
//   - FilterState / FilterResult: The ephemeral query state and its outcome
//   - Theme: The persisted dark/light preference
//   - LayerSet, FeatureCollection: The campus map-layer demo
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
