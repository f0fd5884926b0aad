package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SearchInput is the input schema for the search_sources tool.
type SearchInput struct {
	Query    string `json:"query,omitempty" jsonschema:"case-insensitive text matched against name, description and provider" validate:"max=200"`
	Type     string `json:"type,omitempty" jsonschema:"Vector, Raster, Mixed or Point Cloud; empty for all types" validate:"max=32"`
	Category string `json:"category,omitempty" jsonschema:"Basemaps, Elevation, Environment, Social or Infrastructure" validate:"max=32"`
}

// SearchOutput is the output schema for the search_sources tool.
type SearchOutput struct {
	Sources []SourceOutput `json:"sources"`
	Count   int            `json:"count"`
	Total   int            `json:"total"`
	Summary string         `json:"summary"`
}

// SourceOutput is a catalog record with its badge resolved.
type SourceOutput struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Provider      string   `json:"provider"`
	Type          string   `json:"type"`
	Coverage      string   `json:"coverage"`
	Category      string   `json:"category"`
	Formats       []string `json:"formats"`
	URL           string   `json:"url"`
	Description   string   `json:"description"`
	Reliability   int      `json:"reliability"`
	Badge         string   `json:"badge"`
	EducativeNote string   `json:"educative_note,omitempty"`
}

// GetSourceInput is the input schema for the get_source tool.
type GetSourceInput struct {
	ID string `json:"id" jsonschema:"source identifier, e.g. ne-002" validate:"required,max=64"`
}

// GetSourceOutput is the output schema for the get_source tool.
type GetSourceOutput struct {
	Source  SourceOutput   `json:"source"`
	Formats []FormatOutput `json:"formats"`
}

// DescribeFormatInput is the input schema for the describe_format tool.
type DescribeFormatInput struct {
	Tag string `json:"tag" jsonschema:"format tag such as .shp or .tif" validate:"required,max=32"`
}

// FormatOutput explains one format tag.
type FormatOutput struct {
	Tag         string `json:"tag"`
	Description string `json:"description"`
	Group       string `json:"group,omitempty"`
	Known       bool   `json:"known"`
}

// ListCategoriesInput takes no arguments.
type ListCategoriesInput struct{}

// ListCategoriesOutput is the output schema for the list_categories tool.
type ListCategoriesOutput struct {
	Categories []CategoryOutput `json:"categories"`
}

// CategoryOutput is a category with its source count.
type CategoryOutput struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_sources",
		Description: "Filter the GIS data source catalog by text, data type and category",
	}, s.handleSearchSources)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_source",
		Description: "Get one catalog source with its format explanations",
	}, s.handleGetSource)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "describe_format",
		Description: "Explain a GIS file format tag",
	}, s.handleDescribeFormat)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List catalog categories with their source counts",
	}, s.handleListCategories)
}

func (s *Server) handleSearchSources(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, SearchOutput{}, err
	}

	filter, err := domain.ParseTypeFilter(input.Type)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	result, err := s.ports.Catalog.Filter(ctx, domain.FilterState{Query: input.Query, Type: filter})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	sources := result.Sources
	if input.Category != "" {
		category, ok := domain.ParseCategory(input.Category)
		sources = lo.Filter(sources, func(src domain.Source, _ int) bool {
			return ok && src.Category == category
		})
		result.Sources = sources
	}

	return nil, SearchOutput{
		Sources: lo.Map(sources, func(src domain.Source, _ int) SourceOutput { return toSourceOutput(src) }),
		Count:   len(sources),
		Total:   result.Total,
		Summary: result.Summary(),
	}, nil
}

func (s *Server) handleGetSource(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetSourceInput,
) (*mcp.CallToolResult, GetSourceOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, GetSourceOutput{}, err
	}

	src, err := s.ports.Catalog.Get(ctx, input.ID)
	if err != nil {
		return nil, GetSourceOutput{}, err
	}

	return nil, GetSourceOutput{
		Source:  toSourceOutput(*src),
		Formats: lo.Map(s.ports.Format.DescribeAll(src.Formats), func(f domain.Format, _ int) FormatOutput { return toFormatOutput(f) }),
	}, nil
}

func (s *Server) handleDescribeFormat(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DescribeFormatInput,
) (*mcp.CallToolResult, FormatOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, FormatOutput{}, err
	}
	tag := strings.TrimSpace(input.Tag)
	if !strings.HasPrefix(tag, ".") {
		tag = "." + tag
	}
	return nil, toFormatOutput(s.ports.Format.Describe(tag)), nil
}

func (s *Server) handleListCategories(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListCategoriesInput,
) (*mcp.CallToolResult, ListCategoriesOutput, error) {
	counts, err := s.ports.Catalog.Categories(ctx)
	if err != nil {
		return nil, ListCategoriesOutput{}, err
	}
	return nil, ListCategoriesOutput{
		Categories: lo.Map(counts, func(c domain.CategoryCount, _ int) CategoryOutput {
			return CategoryOutput{Name: c.Category.String(), Count: c.Count}
		}),
	}, nil
}

func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func toSourceOutput(src domain.Source) SourceOutput {
	formats := src.Formats
	if formats == nil {
		formats = []string{}
	}
	return SourceOutput{
		ID:            src.ID,
		Name:          src.Name,
		Provider:      src.Provider,
		Type:          src.Type.String(),
		Coverage:      string(src.Coverage),
		Category:      src.Category.String(),
		Formats:       formats,
		URL:           src.URL,
		Description:   src.Description,
		Reliability:   int(src.Reliability),
		Badge:         src.Reliability.BadgeLabel(),
		EducativeNote: src.EducativeNote,
	}
}

func toFormatOutput(f domain.Format) FormatOutput {
	return FormatOutput{
		Tag:         f.Tag,
		Description: f.Description,
		Group:       string(f.Group),
		Known:       f.Known,
	}
}
