package overpass

import (
	"fmt"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// serverTimeout is the [timeout:N] budget requested from the server, in seconds.
const serverTimeout = 25

// BuildingsQuery selects building ways and relations plus their nodes.
func BuildingsQuery(bbox domain.BBox) string {
	return fmt.Sprintf(`[out:json][timeout:%d];
(
  way["building"](%s);
  relation["building"](%s);
);
out body;
>;
out skel qt;`, serverTimeout, bbox, bbox)
}

// RoadsQuery selects highway ways plus their nodes.
func RoadsQuery(bbox domain.BBox) string {
	return fmt.Sprintf(`[out:json][timeout:%d];
(
  way["highway"](%s);
);
out body;
>;
out skel qt;`, serverTimeout, bbox)
}
