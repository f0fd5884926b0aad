package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

var errBoom = errors.New("boom")

// stubFeatureSource returns canned layers or errors.
type stubFeatureSource struct {
	buildings    domain.FeatureCollection
	roads        domain.FeatureCollection
	buildingsErr error
	roadsErr     error

	mu    sync.Mutex
	boxes []domain.BBox
}

func (s *stubFeatureSource) Buildings(_ context.Context, bbox domain.BBox) (domain.FeatureCollection, error) {
	s.record(bbox)
	if s.buildingsErr != nil {
		return domain.FeatureCollection{}, s.buildingsErr
	}
	return s.buildings, nil
}

func (s *stubFeatureSource) Roads(_ context.Context, bbox domain.BBox) (domain.FeatureCollection, error) {
	s.record(bbox)
	if s.roadsErr != nil {
		return domain.FeatureCollection{}, s.roadsErr
	}
	return s.roads, nil
}

func (s *stubFeatureSource) record(bbox domain.BBox) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boxes = append(s.boxes, bbox)
}

// recordingLayerExporter remembers which layers were written.
type recordingLayerExporter struct {
	written []string
	err     error
}

func (e *recordingLayerExporter) ExportBuildings(_ context.Context, dir string, _ domain.FeatureCollection) (string, error) {
	return e.write(dir, "buildings")
}

func (e *recordingLayerExporter) ExportRoads(_ context.Context, dir string, _ domain.FeatureCollection) (string, error) {
	return e.write(dir, "roads")
}

func (e *recordingLayerExporter) write(dir, name string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	e.written = append(e.written, name)
	return filepath.Join(dir, name+".shp"), nil
}

// recordingOpener captures opened URLs.
type recordingOpener struct {
	urls []string
	err  error
}

func (o *recordingOpener) OpenURL(url string) error {
	if o.err != nil {
		return o.err
	}
	o.urls = append(o.urls, url)
	return nil
}

// recordingClipboard captures copied text.
type recordingClipboard struct {
	text string
	err  error
}

func (c *recordingClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

// recordingCatalogExporter captures the exported sources.
type recordingCatalogExporter struct {
	path    string
	sources []domain.Source
	err     error
}

func (e *recordingCatalogExporter) ExportCatalog(_ context.Context, path string, sources []domain.Source) (*domain.ExportReport, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.path = path
	e.sources = sources
	return &domain.ExportReport{ID: "run-1", Path: path, Sources: len(sources)}, nil
}

// failingCatalogStore fails every call.
type failingCatalogStore struct{}

func (failingCatalogStore) List(context.Context) ([]domain.Source, error) {
	return nil, errBoom
}

func (failingCatalogStore) Get(context.Context, string) (*domain.Source, error) {
	return nil, errBoom
}
