// Package shapefile exports campus map layers as ESRI shapefiles.
package shapefile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/jonas-p/go-shp"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.LayerExporter = (*Writer)(nil)

var log = logger.With("shapefile")

// File names written into the export directory.
const (
	BuildingsFile = "buildings.shp"
	RoadsFile     = "roads.shp"
)

// DBF column names, at most 10 characters.
const (
	FieldName     = "OSM_NAME"
	FieldBuilding = "BUILDING"
	FieldHighway  = "HIGHWAY"
	FieldWeight   = "WEIGHT"
)

const (
	nameLen  = 80
	classLen = 32
)

// wgs84 is the .prj text for EPSG:4326.
const wgs84 = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`

// Writer writes layers to shapefiles with a WGS84 projection file.
type Writer struct{}

// NewWriter creates a new shapefile writer.
func NewWriter() *Writer {
	return &Writer{}
}

// ExportBuildings writes polygon features to buildings.shp.
// Non-polygon features are skipped.
func (w *Writer) ExportBuildings(ctx context.Context, dir string, fc domain.FeatureCollection) (string, error) {
	fields := []shp.Field{
		shp.StringField(FieldName, nameLen),
		shp.StringField(FieldBuilding, classLen),
	}
	return w.write(ctx, filepath.Join(dir, BuildingsFile), shp.POLYGON, fields, fc, func(f domain.Feature) (shp.Shape, []any) {
		if f.Geometry.Type != domain.GeometryPolygon || len(f.Geometry.Rings) == 0 {
			return nil, nil
		}
		p := shp.Polygon(*shp.NewPolyLine(toParts(f.Geometry.Rings)))
		return &p, []any{
			truncate(f.Properties["name"], nameLen),
			truncate(f.Properties["building"], classLen),
		}
	})
}

// ExportRoads writes line features to roads.shp with the draw weight of
// each highway class.
func (w *Writer) ExportRoads(ctx context.Context, dir string, fc domain.FeatureCollection) (string, error) {
	fields := []shp.Field{
		shp.StringField(FieldName, nameLen),
		shp.StringField(FieldHighway, classLen),
		shp.FloatField(FieldWeight, 6, 1),
	}
	return w.write(ctx, filepath.Join(dir, RoadsFile), shp.POLYLINE, fields, fc, func(f domain.Feature) (shp.Shape, []any) {
		if f.Geometry.Type != domain.GeometryLineString || len(f.Geometry.Line) < 2 {
			return nil, nil
		}
		highway := f.Properties["highway"]
		return shp.NewPolyLine(toParts([][]domain.Position{f.Geometry.Line})), []any{
			truncate(f.Properties["name"], nameLen),
			truncate(highway, classLen),
			domain.RoadStyleFor(highway).Weight,
		}
	})
}

type convertFunc func(domain.Feature) (shp.Shape, []any)

func (w *Writer) write(ctx context.Context, path string, kind shp.ShapeType, fields []shp.Field, fc domain.FeatureCollection, convert convertFunc) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	out, err := shp.Create(path, kind)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	closed := false
	defer func() {
		if !closed {
			out.Close()
			_ = fixDBFName(path[:len(path)-len(filepath.Ext(path))])
		}
	}()

	if err := out.SetFields(fields); err != nil {
		return "", fmt.Errorf("setting fields: %w", err)
	}

	written, skipped := 0, 0
	for _, f := range fc.Features {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		shape, attrs := convert(f)
		if shape == nil {
			skipped++
			continue
		}
		row := int(out.Write(shape))
		for i, v := range attrs {
			if err := out.WriteAttribute(row, i, v); err != nil {
				return "", fmt.Errorf("writing attribute %s: %w", fields[i].String(), err)
			}
		}
		written++
	}
	out.Close()
	closed = true

	base := path[:len(path)-len(filepath.Ext(path))]
	if err := fixDBFName(base); err != nil {
		return "", err
	}

	prj := base + ".prj"
	if err := os.WriteFile(prj, []byte(wgs84), 0644); err != nil {
		return "", fmt.Errorf("writing projection: %w", err)
	}

	log.Debug("wrote %d features to %s (%d skipped)", written, path, skipped)
	return path, nil
}

// fixDBFName moves the attribute table go-shp v0.1.1 writes as "<base>dbf"
// to "<base>.dbf".
func fixDBFName(base string) error {
	stray := base + "dbf"
	if _, err := os.Stat(stray); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := os.Rename(stray, base+".dbf"); err != nil {
		return fmt.Errorf("renaming attribute table: %w", err)
	}
	return nil
}

// toParts converts GeoJSON rings to shapefile parts. X is longitude.
func toParts(rings [][]domain.Position) [][]shp.Point {
	parts := make([][]shp.Point, 0, len(rings))
	for _, ring := range rings {
		pts := make([]shp.Point, len(ring))
		for i, p := range ring {
			pts[i] = shp.Point{X: p[0], Y: p[1]}
		}
		parts = append(parts, pts)
	}
	return parts
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
