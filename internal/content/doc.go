// Package content builds the markdown shown by the CLI, the TUI and the MCP
// resources, and renders it for the terminal with glamour.
package content
