package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/sourcebook/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CatalogStore = (*Store)(nil)

// Store is a catalog database opened from a file.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path and applies pending migrations.
func Open(path string) (*Store, error) {
	// Rollback journal keeps the export a single file.
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(DELETE)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: path}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_catalog.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// SchemaVersion returns the highest applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// saveCatalog writes categories, sources and their formats plus one
// export_runs row in a single transaction.
func (s *Store) saveCatalog(ctx context.Context, report *domain.ExportReport, sources []domain.Source) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, c := range domain.AllCategories() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO categories (name, position) VALUES (?, ?)", c.String(), i); err != nil {
			return fmt.Errorf("inserting category %s: %w", c, err)
		}
	}

	formats := 0
	for i, src := range sources {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sources (id, position, name, provider, type, coverage, url,
				description, reliability, educative_note, category)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			src.ID, i, src.Name, src.Provider, string(src.Type), string(src.Coverage), src.URL,
			src.Description, int(src.Reliability), src.EducativeNote, src.Category.String())
		if err != nil {
			return fmt.Errorf("inserting source %s: %w", src.ID, err)
		}

		for j, tag := range src.Formats {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO source_formats (source_id, position, tag, description) VALUES (?, ?, ?, ?)",
				src.ID, j, tag, domain.FormatDescription(tag)); err != nil {
				return fmt.Errorf("inserting format %s for %s: %w", tag, src.ID, err)
			}
			formats++
		}
	}
	report.Formats = formats

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO export_runs (id, exported_at, source_count, format_count) VALUES (?, ?, ?, ?)",
		report.ID, report.ExportedAt, report.Sources, report.Formats); err != nil {
		return fmt.Errorf("recording export run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

const sourceColumns = `id, name, provider, type, coverage, url, description,
	reliability, educative_note, category`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSource(row rowScanner) (domain.Source, error) {
	var src domain.Source
	var typ, coverage, category string
	var reliability int
	err := row.Scan(&src.ID, &src.Name, &src.Provider, &typ, &coverage, &src.URL,
		&src.Description, &reliability, &src.EducativeNote, &category)
	if err != nil {
		return src, err
	}
	src.Type = domain.SourceType(typ)
	src.Coverage = domain.Coverage(coverage)
	src.Reliability = domain.Reliability(reliability)
	src.Category = domain.Category(category)
	return src, nil
}

// List returns every source in export order.
func (s *Store) List(ctx context.Context) ([]domain.Source, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sourceColumns+" FROM sources ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying sources: %w", err)
	}
	defer rows.Close()

	sources := []domain.Source{}
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sources: %w", err)
	}

	formats, err := s.formatsBySource(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sources {
		sources[i].Formats = formats[sources[i].ID]
	}
	return sources, nil
}

// Get retrieves a source by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Source, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+sourceColumns+" FROM sources WHERE id = ?", id)
	src, err := scanSource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning source: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT tag FROM source_formats WHERE source_id = ? ORDER BY position", id)
	if err != nil {
		return nil, fmt.Errorf("querying formats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scanning format: %w", err)
		}
		src.Formats = append(src.Formats, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating formats: %w", err)
	}
	return &src, nil
}

func (s *Store) formatsBySource(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT source_id, tag FROM source_formats ORDER BY source_id, position")
	if err != nil {
		return nil, fmt.Errorf("querying formats: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var id, tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("scanning format: %w", err)
		}
		out[id] = append(out[id], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating formats: %w", err)
	}
	return out, nil
}

// LastExport returns the most recent export run.
func (s *Store) LastExport(ctx context.Context) (*domain.ExportReport, error) {
	report := domain.ExportReport{Path: s.path}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, exported_at, source_count, format_count
		FROM export_runs ORDER BY exported_at DESC LIMIT 1`).
		Scan(&report.ID, &report.ExportedAt, &report.Sources, &report.Formats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning export run: %w", err)
	}
	return &report, nil
}
