package content

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// About returns the About page: the reliability rubric and the project team.
func About() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# About the %s\n\n", domain.Credits.Project)
	fmt.Fprintf(&b, "%s.\n\n", domain.Credits.Tagline)

	b.WriteString("## Understanding Our Ratings\n\n")
	for _, tier := range domain.RatingRubric {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", tier.Heading(), tier.Description)
	}

	b.WriteString("## Project Team\n\n")
	fmt.Fprintf(&b, "**%s**  \n%s\n\n", domain.Credits.Institution, domain.Credits.Campus)
	b.WriteString("Developers:\n\n")
	for _, dev := range domain.Credits.Developers {
		fmt.Fprintf(&b, "- %s\n", dev)
	}
	return b.String()
}

// Learn returns the Learn GIS page. The campus section lists every layer;
// the TUI appends live status with LayerStatus.
func Learn() string {
	var b strings.Builder
	b.WriteString("# Learn GIS\n\n")

	b.WriteString("## The Five Components of GIS\n\n")
	for i, c := range domain.GISComponents {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, c.Name, c.Description)
	}

	b.WriteString("\n## The History of GIS\n\n")
	for _, m := range domain.Timeline {
		fmt.Fprintf(&b, "- **%s** %s. %s\n", m.Year, m.Title, m.Description)
	}

	b.WriteString("\n## Campus Layer Model: USTP CDO\n\n")
	fmt.Fprintf(&b, "Centre %.4f, %.4f at zoom %d, bounding box `%s`.\n\n",
		domain.CampusCenter.Lat, domain.CampusCenter.Lon, domain.CampusZoom, domain.CampusBBox)
	for _, l := range domain.AllLayers() {
		fmt.Fprintf(&b, "- **%s** (%s)\n", l.Label(), l.Kind())
	}
	fmt.Fprintf(&b, "\n> %s\n", domain.CampusLayerNote)
	return b.String()
}

// LayerStatus describes the visible layers of the campus demo.
// While loading, only the legend is shown.
func LayerStatus(views []domain.LayerView, loading bool) string {
	var b strings.Builder
	b.WriteString("### Active Layers\n\n")
	if len(views) == 0 {
		b.WriteString("_All layers hidden._\n")
		return b.String()
	}
	for _, v := range views {
		switch {
		case v.Layer == domain.LayerBasemap:
			fmt.Fprintf(&b, "- %s: %s\n", v.Label, v.Kind)
		case loading:
			fmt.Fprintf(&b, "- %s: loading…\n", v.Label)
		default:
			fmt.Fprintf(&b, "- %s: %d %s features\n", v.Label, v.Features, v.Kind)
		}
	}
	return b.String()
}

// Cheatsheet renders the known format groups as tables.
func Cheatsheet(sections []domain.FormatSection) string {
	var b strings.Builder
	b.WriteString("# GIS Format Cheatsheet\n")
	for _, s := range sections {
		fmt.Fprintf(&b, "\n## %s\n\n| Tag | Description |\n|---|---|\n", s.Group)
		for _, f := range s.Formats {
			fmt.Fprintf(&b, "| `%s` | %s |\n", f.Tag, escapeCell(f.Description))
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
