package domain

import "time"

// ExportReport summarises a catalog export.
type ExportReport struct {
	// ID identifies the export run inside the written database.
	ID string `json:"id"`

	// Path is the file written.
	Path string `json:"path"`

	// Sources is the number of source rows written.
	Sources int `json:"sources"`

	// Formats is the number of format rows written.
	Formats int `json:"formats"`

	// ExportedAt is when the export finished.
	ExportedAt time.Time `json:"exported_at"`
}

// LayerFile is one exported map layer.
type LayerFile struct {
	Layer    Layer  `json:"-"`
	Name     string `json:"layer"`
	Path     string `json:"path"`
	Features int    `json:"features"`
}
