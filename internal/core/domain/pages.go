package domain

import "strconv"

// RatingTier explains one reliability score on the About page.
type RatingTier struct {
	Score       Reliability `json:"score"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

// Heading returns the tier heading, e.g. "5/5 — Academic Grade".
func (r RatingTier) Heading() string {
	return strconv.Itoa(int(r.Score)) + "/5 — " + r.Title
}

// RatingRubric lists the reliability tiers from best to worst.
var RatingRubric = []RatingTier{
	{
		Score:       5,
		Title:       "Academic Grade",
		Description: "Official government or institutional source. Includes clear metadata, high spatial resolution, well-documented methodology, and no broken links.",
	},
	{
		Score:       4,
		Title:       "Verified",
		Description: "From a trusted organization such as NGOs, universities, or established research groups. Good data quality overall, but may require minor cleaning or attribute verification.",
	},
	{
		Score:       3,
		Title:       "Use with Caution",
		Description: "Crowdsourced, community-contributed, or older datasets. May have inconsistent coverage, outdated information, or limited documentation.",
	},
}

// ProjectCredits names the team behind the catalog.
type ProjectCredits struct {
	Project     string   `json:"project"`
	Tagline     string   `json:"tagline"`
	Institution string   `json:"institution"`
	Campus      string   `json:"campus"`
	Developers  []string `json:"developers"`
}

// Credits for the About page.
var Credits = ProjectCredits{
	Project:     "GIS Database Project",
	Tagline:     "A curated collection of geospatial data sources for academic use",
	Institution: "University of Science and Technology of Southern Philippines",
	Campus:      "USTP — Cagayan de Oro",
	Developers:  []string{"Louwegie Apag", "Marjorie Macumao"},
}

// GISComponent is one of the five pillars of a GIS.
type GISComponent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GISComponents lists the five components of GIS.
var GISComponents = []GISComponent{
	{"Hardware", "The physical machinery, from servers to field tablets."},
	{"Software", "Tools like ArcGIS, QGIS, and PostGIS that analyze spatial data."},
	{"Data", "Vector, Raster, and Tabular data—the fuel of any GIS."},
	{"People", "Analysts, developers, and decision-makers who define the problems."},
	{"Methods", "Standardized procedures and best practices for analysis."},
}

// Milestone is one entry of the History of GIS timeline.
type Milestone struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Timeline lists GIS milestones in chronological order.
var Timeline = []Milestone{
	{"1960", "The Dawn of Computational Geography", "The quantitative revolution in geography began, moving from description to statistical analysis."},
	{"1963", "The First GIS", `Roger Tomlinson developed the Canada Geographic Information System (CGIS) to inventory land capabilities. Tomlinson is known as the "Father of GIS".`},
	{"1965", "The Harvard Laboratory", "Howard Fisher established the Harvard Lab for Computer Graphics, creating SYMAP code and training future industry leaders."},
	{"1969", "Esri is Founded", "Jack and Laura Dangermond founded the Environmental Systems Research Institute in Redlands, CA, initially as a land-use consulting firm."},
	{"1981", "Commercialization", "Release of ARC/INFO, the first major commercial GIS software, shifting GIS from academic labs to industry."},
	{"2005", "The Google Maps Era", "Launch of Google Maps and Keyhole (Google Earth), making spatial data accessible to the public."},
	{"Present", "Web GIS & The Cloud", "The shift to SaaS, real-time sensors, and mobile data collection."},
}

// CampusLayerNote is the context shown under the campus layer demo.
const CampusLayerNote = `This is a localized example of USTP CDO. Notice how the 'Roads' layer (C.M. Recto) is just a line vector, while the 'Buildings' are polygon vectors. In a real GIS, we can ask questions like: "How many meters is the Science Complex from the main highway?" by measuring the distance between these two layers.`
