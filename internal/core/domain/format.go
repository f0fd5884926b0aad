package domain

import (
	"sort"
	"strings"
)

// FormatGroup classifies a known format tag for the cheatsheet.
type FormatGroup string

// Format groups, in cheatsheet order.
const (
	FormatGroupVector     FormatGroup = "Vector"
	FormatGroupRaster     FormatGroup = "Raster"
	FormatGroupTabular    FormatGroup = "Tabular/Other"
	FormatGroupWebService FormatGroup = "Web Services"
)

// AllFormatGroups returns the groups in cheatsheet order.
func AllFormatGroups() []FormatGroup {
	return []FormatGroup{FormatGroupVector, FormatGroupRaster, FormatGroupTabular, FormatGroupWebService}
}

type formatInfo struct {
	group       FormatGroup
	description string
}

var formats = map[string]formatInfo{
	".shp":     {FormatGroupVector, "Shapefile — Standard vector format. Requires .shx, .dbf, and .prj companion files."},
	".geojson": {FormatGroupVector, "GeoJSON — Web-friendly vector format. Human-readable JSON structure."},
	".gpkg":    {FormatGroupVector, "GeoPackage — Modern SQLite-based format. Single file, multiple layers."},
	".kml":     {FormatGroupVector, "KML — Google Earth format. Good for sharing, limited attributes."},
	".kmz":     {FormatGroupVector, "KMZ — Compressed KML. Smaller file size, includes embedded resources."},
	".gdb":     {FormatGroupVector, "File Geodatabase — Esri proprietary. High performance, requires ArcGIS."},
	".sqlite":  {FormatGroupVector, "SpatiaLite — SQLite with spatial extensions. Portable single-file database."},
	".osm":     {FormatGroupVector, "OSM XML — OpenStreetMap native format. Verbose, use .pbf for large areas."},
	".pbf":     {FormatGroupVector, "Protobuf Binary — Compressed OSM format. 5-10x smaller than .osm."},

	".tiff":   {FormatGroupRaster, "GeoTIFF — Georeferenced raster. Large file sizes, excellent compatibility."},
	".tif":    {FormatGroupRaster, "GeoTIFF — Georeferenced raster. Large file sizes, excellent compatibility."},
	".jp2":    {FormatGroupRaster, "JPEG2000 — Compressed imagery. Better compression than TIFF."},
	".hdf":    {FormatGroupRaster, "HDF — Hierarchical Data Format. Common for satellite products (MODIS)."},
	".netcdf": {FormatGroupRaster, "NetCDF — Network Common Data Form. Standard for climate/ocean data."},
	".asc":    {FormatGroupRaster, "ASCII Grid — Text-based raster. Human-readable but very large."},
	".bil":    {FormatGroupRaster, "Band Interleaved — Raw binary raster. Requires header file (.hdr)."},

	".csv":  {FormatGroupTabular, "CSV — Comma-separated values. Import with X/Y columns for points."},
	".xlsx": {FormatGroupTabular, "Excel — Spreadsheet format. Convert to CSV for GIS import."},
	".dat":  {FormatGroupTabular, "Data file — Generic format. Check documentation for structure."},
	".rds":  {FormatGroupTabular, "R Data — R language binary. Use R or Python (pyreadr) to read."},

	".wmts": {FormatGroupWebService, "WMTS — Web Map Tile Service. Tiled map streaming protocol."},
	".xyz":  {FormatGroupWebService, "XYZ Tiles — Simple tile URL pattern. Common for basemaps."},
	".png":  {FormatGroupWebService, "PNG — Raster tiles. Lossless compression, supports transparency."},
}

// FormatDescription returns the tooltip for a format tag.
// Unknown tags get a generic description built from the tag as given.
func FormatDescription(tag string) string {
	if info, ok := formats[strings.ToLower(tag)]; ok {
		return info.description
	}
	return tag + " — GIS data format"
}

// IsKnownFormat reports whether the tag has a specific description.
func IsKnownFormat(tag string) bool {
	_, ok := formats[strings.ToLower(tag)]
	return ok
}

// Format is a format tag with its tooltip.
type Format struct {
	Tag         string      `json:"tag" yaml:"tag"`
	Description string      `json:"description" yaml:"description"`
	Group       FormatGroup `json:"group,omitempty" yaml:"group,omitempty"`
	Known       bool        `json:"known" yaml:"known"`
}

// DescribeFormat returns the Format for a tag. It never fails.
func DescribeFormat(tag string) Format {
	info, ok := formats[strings.ToLower(tag)]
	return Format{
		Tag:         tag,
		Description: FormatDescription(tag),
		Group:       info.group,
		Known:       ok,
	}
}

// FormatSection is one group of the cheatsheet.
type FormatSection struct {
	Group   FormatGroup `json:"group" yaml:"group"`
	Formats []Format    `json:"formats" yaml:"formats"`
}

// KnownFormats returns every known format grouped in cheatsheet order,
// with tags sorted within each group.
func KnownFormats() []FormatSection {
	byGroup := make(map[FormatGroup][]Format)
	for tag := range formats {
		f := DescribeFormat(tag)
		byGroup[f.Group] = append(byGroup[f.Group], f)
	}
	sections := make([]FormatSection, 0, len(byGroup))
	for _, g := range AllFormatGroups() {
		list := byGroup[g]
		sort.Slice(list, func(i, j int) bool { return list[i].Tag < list[j].Tag })
		sections = append(sections, FormatSection{Group: g, Formats: list})
	}
	return sections
}
