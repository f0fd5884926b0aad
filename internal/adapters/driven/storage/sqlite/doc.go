// Package sqlite writes the catalog to a standalone SQLite database and
// reads it back as a driven.CatalogStore.
//
// The schema is managed by numbered migrations embedded from the
// migrations package. Each export creates a fresh file so the result is
// a single portable database a student can open in QGIS or DB Browser.
package sqlite
