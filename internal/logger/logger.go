// Package logger provides leveled logging for the sourcebook CLI.
// Debug and Info output is only printed when verbose mode is enabled via
// the --verbose flag. Warn and Error are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. The TUI redirects it so log lines do not
// corrupt the alternate screen.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Logger prefixes every message with a component name.
type Logger struct {
	component string
}

// With returns a logger scoped to the named component.
func With(component string) Logger {
	return Logger{component: component}
}

// Debug prints a debug message if verbose mode is enabled.
func (l Logger) Debug(format string, args ...any) { l.print("DEBUG", true, format, args...) }

// Info prints an informational message if verbose mode is enabled.
func (l Logger) Info(format string, args ...any) { l.print("INFO", true, format, args...) }

// Warn prints a warning.
func (l Logger) Warn(format string, args ...any) { l.print("WARN", false, format, args...) }

// Error prints an error.
func (l Logger) Error(format string, args ...any) { l.print("ERROR", false, format, args...) }

func (l Logger) print(level string, gated bool, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if gated && !verbose {
		return
	}
	prefix := "[" + level + "] "
	if l.component != "" {
		prefix += "[" + l.component + "] "
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

var root Logger

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { root.Debug(format, args...) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { root.Info(format, args...) }

// Warn prints a warning message.
func Warn(format string, args ...any) { root.Warn(format, args...) }

// Error prints an error message.
func Error(format string, args ...any) { root.Error(format, args...) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
