// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The catalog filter lives here as FilterSources, a pure function
// shared by the CLI, TUI and MCP adapters.
package services
