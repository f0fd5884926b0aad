// Package memory provides in-memory implementations of driven ports.
// They back tests and the MCP in-memory transport fixtures.
package memory
