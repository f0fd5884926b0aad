package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTypeFilter indicates a type filter name that is neither
	// "All" nor a known source type.
	ErrInvalidTypeFilter = errors.New("invalid type filter")

	// ErrInvalidTheme indicates a theme value other than dark or light.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidLayer indicates an unknown map layer name.
	ErrInvalidLayer = errors.New("invalid layer")

	// ErrInvalidDataset indicates the embedded catalog failed validation.
	ErrInvalidDataset = errors.New("invalid catalog dataset")

	// ErrAlreadyExists indicates an export target already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnavailable indicates an optional adapter is not configured
	// (browser, clipboard, exporter).
	ErrUnavailable = errors.New("unavailable")
)
