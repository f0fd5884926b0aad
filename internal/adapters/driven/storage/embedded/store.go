// Package embedded provides the catalog dataset compiled into the binary.
//
// The dataset lives in sources.toml next to this file. It is decoded with
// go-toml, validated record by record, and then served read-only.
package embedded

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/sourcebook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
)

//go:embed sources.toml
var dataset []byte

// Ensure Store implements the interface.
var _ driven.CatalogStore = (*Store)(nil)

type record struct {
	ID            string   `toml:"id" validate:"required"`
	Category      string   `toml:"category" validate:"required,oneof=Basemaps Elevation Environment Social Infrastructure"`
	Name          string   `toml:"name" validate:"required"`
	Provider      string   `toml:"provider" validate:"required"`
	Type          string   `toml:"type" validate:"required,oneof=Vector Raster Mixed 'Point Cloud'"`
	Coverage      string   `toml:"coverage" validate:"required,oneof=Global National Regional"`
	Formats       []string `toml:"formats" validate:"required,min=1,dive,required,startswith=."`
	URL           string   `toml:"url" validate:"required,url"`
	Description   string   `toml:"description" validate:"required"`
	Reliability   int      `toml:"reliability" validate:"min=1,max=5"`
	EducativeNote string   `toml:"educative_note" validate:"required"`
}

type file struct {
	Sources []record `toml:"source"`
}

// Store serves the validated catalog.
type Store struct {
	*memory.CatalogStore
	size int
}

// NewStore decodes and validates the embedded dataset.
func NewStore() (*Store, error) {
	return Parse(dataset)
}

// Parse decodes and validates a dataset in the embedded TOML layout.
func Parse(data []byte) (*Store, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}
	if len(f.Sources) == 0 {
		return nil, fmt.Errorf("%w: no sources", domain.ErrInvalidDataset)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	seen := make(map[string]bool, len(f.Sources))
	sources := make([]domain.Source, 0, len(f.Sources))

	for i, r := range f.Sources {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("%w: source #%d (%s): %s", domain.ErrInvalidDataset, i+1, r.ID, describe(err))
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidDataset, r.ID)
		}
		seen[r.ID] = true
		sources = append(sources, r.toDomain())
	}

	return &Store{CatalogStore: memory.NewCatalogStore(sources...), size: len(sources)}, nil
}

// Len returns the number of sources in the catalog.
func (s *Store) Len() int {
	return s.size
}

func (r record) toDomain() domain.Source {
	return domain.Source{
		ID:            r.ID,
		Name:          r.Name,
		Provider:      r.Provider,
		Type:          domain.SourceType(r.Type),
		Coverage:      domain.Coverage(r.Coverage),
		Formats:       r.Formats,
		URL:           r.URL,
		Description:   r.Description,
		Reliability:   domain.Reliability(r.Reliability),
		EducativeNote: r.EducativeNote,
		Category:      domain.Category(r.Category),
	}
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
