package driven

import (
	"context"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// FeatureSource fetches OpenStreetMap features for a bounding box.
type FeatureSource interface {
	// Buildings returns building footprints inside bbox.
	Buildings(ctx context.Context, bbox domain.BBox) (domain.FeatureCollection, error)

	// Roads returns ways tagged highway inside bbox.
	Roads(ctx context.Context, bbox domain.BBox) (domain.FeatureCollection, error)
}
