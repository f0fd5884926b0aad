package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"

	"github.com/custodia-labs/sourcebook/internal/content"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// uriScheme is the custom URI scheme for sourcebook resources.
const uriScheme = "sourcebook://"

const (
	mimeJSON     = "application/json"
	mimeMarkdown = "text/markdown"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sources",
		Name:        "sources",
		Description: "The full GIS data source catalog",
		MIMEType:    mimeJSON,
	}, s.handleSourcesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sources/{sourceId}",
		Name:        "source",
		Description: "A single catalog source",
		MIMEType:    mimeJSON,
	}, s.handleSourceResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "formats",
		Name:        "formats",
		Description: "Cheatsheet of known GIS format tags",
		MIMEType:    mimeJSON,
	}, s.handleFormatsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "pages/about",
		Name:        "about",
		Description: "Reliability rubric and project team",
		MIMEType:    mimeMarkdown,
	}, pageHandler(content.About))

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "pages/learn",
		Name:        "learn",
		Description: "Components of GIS, history timeline and the campus layer model",
		MIMEType:    mimeMarkdown,
	}, pageHandler(content.Learn))
}

// handleSourcesResource returns every source as JSON.
func (s *Server) handleSourcesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	sources, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	out := lo.Map(sources, func(src domain.Source, _ int) SourceOutput { return toSourceOutput(src) })
	return jsonResult(req.Params.URI, out)
}

// handleSourceResource returns one source as JSON.
func (s *Server) handleSourceResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractSourceID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	src, err := s.ports.Catalog.Get(ctx, id)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResult(req.Params.URI, toSourceOutput(*src))
}

// handleFormatsResource returns the format cheatsheet as JSON.
func (s *Server) handleFormatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResult(req.Params.URI, s.ports.Format.Cheatsheet())
}

func pageHandler(page func() string) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: mimeMarkdown,
				Text:     page(),
			}},
		}, nil
	}
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractSourceID extracts the source ID from a URI like sourcebook://sources/{sourceId}.
func extractSourceID(uri string) string {
	const prefix = uriScheme + "sources/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
