package driving

import (
	"context"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// MapDemoService drives the campus map-layer demo.
type MapDemoService interface {
	// Load fetches buildings and roads for the campus.
	// It never fails; a layer whose fetch failed is empty.
	Load(ctx context.Context) domain.MapData

	// Export writes the visible vector layers to dir.
	Export(ctx context.Context, dir string, data domain.MapData, layers domain.LayerSet) ([]domain.LayerFile, error)
}
