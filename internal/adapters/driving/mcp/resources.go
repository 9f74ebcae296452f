package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
	"github.com/Illian-Amerond/tagledger/internal/render"
)

const (
	// uriScheme is the custom URI scheme for tagledger resources.
	uriScheme = "tagledger://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Rendered changelog narrative.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "narrative",
		Name:        "narrative",
		Description: "Reverse-chronological changelog narrative rendered from the ledger",
		MIMEType:    "text/markdown",
	}, s.handleNarrativeResource)

	// Raw classified entries.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "entries",
		Name:        "entries",
		Description: "Classified ledger annotations in scrape order",
		MIMEType:    "application/json",
	}, s.handleEntriesResource)
}

// handleNarrativeResource renders the markdown narrative.
func (s *Server) handleNarrativeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Ledger.Entries(ctx, domain.Filter{})
	if err != nil {
		return nil, fmt.Errorf("scraping ledger: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     render.Narrative(entries),
		}},
	}, nil
}

// handleEntriesResource returns the raw entry records as JSON.
func (s *Server) handleEntriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Ledger.Entries(ctx, domain.Filter{})
	if err != nil {
		return nil, fmt.Errorf("scraping ledger: %w", err)
	}

	data, err := render.Raw(entries)
	if err != nil {
		return nil, fmt.Errorf("marshalling entries: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
