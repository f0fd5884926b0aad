package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
	"github.com/custodia-labs/sourcebook/internal/logger"
)

// Ensure MapDemoService implements the interface.
var _ driving.MapDemoService = (*MapDemoService)(nil)

var mapLog = logger.With("mapdemo")

// MapDemoService loads and exports the campus demo layers.
type MapDemoService struct {
	features driven.FeatureSource
	exporter driven.LayerExporter
	bbox     domain.BBox
}

// NewMapDemoService creates a map demo service for the campus bounding box.
// Either dependency may be nil: Load then returns empty layers and
// Export reports domain.ErrUnavailable.
func NewMapDemoService(features driven.FeatureSource, exporter driven.LayerExporter) *MapDemoService {
	return &MapDemoService{
		features: features,
		exporter: exporter,
		bbox:     domain.CampusBBox,
	}
}

// Load fetches buildings and roads concurrently. Each failure is logged and
// leaves only its own layer empty.
func (s *MapDemoService) Load(ctx context.Context) domain.MapData {
	data := domain.EmptyMapData()
	if s.features == nil {
		mapLog.Debug("no feature source configured")
		return data
	}

	var g errgroup.Group
	g.Go(func() error {
		fc, err := s.features.Buildings(ctx, s.bbox)
		if err != nil {
			mapLog.Warn("buildings layer unavailable: %v", err)
			return nil
		}
		data.Buildings = fc
		return nil
	})
	g.Go(func() error {
		fc, err := s.features.Roads(ctx, s.bbox)
		if err != nil {
			mapLog.Warn("roads layer unavailable: %v", err)
			return nil
		}
		data.Roads = fc
		return nil
	})
	_ = g.Wait()

	mapLog.Debug("loaded %d buildings, %d roads", data.Buildings.Len(), data.Roads.Len())
	return data
}

// Export writes the visible vector layers. The basemap has no vector data.
func (s *MapDemoService) Export(ctx context.Context, dir string, data domain.MapData, layers domain.LayerSet) ([]domain.LayerFile, error) {
	if s.exporter == nil {
		return nil, fmt.Errorf("layer export: %w", domain.ErrUnavailable)
	}

	var files []domain.LayerFile
	if layers.Roads {
		path, err := s.exporter.ExportRoads(ctx, dir, data.Roads)
		if err != nil {
			return files, fmt.Errorf("export roads: %w", err)
		}
		files = append(files, domain.LayerFile{Layer: domain.LayerRoads, Name: domain.LayerRoads.String(), Path: path, Features: data.Roads.Len()})
	}
	if layers.Buildings {
		path, err := s.exporter.ExportBuildings(ctx, dir, data.Buildings)
		if err != nil {
			return files, fmt.Errorf("export buildings: %w", err)
		}
		files = append(files, domain.LayerFile{Layer: domain.LayerBuildings, Name: domain.LayerBuildings.String(), Path: path, Features: data.Buildings.Len()})
	}
	return files, nil
}
