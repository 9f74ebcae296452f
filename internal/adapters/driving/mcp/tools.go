package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// EntriesInput is the input schema for the ledger_entries tool.
type EntriesInput struct {
	Layer string `json:"layer,omitempty" jsonschema:"restrict results to one layer code, e.g. ONTO"`
	Tag   string `json:"tag,omitempty" jsonschema:"restrict results to one tag, e.g. SEED"`
}

// EntriesOutput is the output schema for the ledger_entries tool.
type EntriesOutput struct {
	Entries []EntryOutput `json:"entries"`
	Count   int           `json:"count"`
}

// EntryOutput represents a single classified annotation.
type EntryOutput struct {
	File    string `json:"file"`
	Section string `json:"section"`
	Layer   string `json:"layer,omitempty"`
	Tag     string `json:"tag"`
	Date    string `json:"date"`
	Version string `json:"ver"`
	Note    string `json:"note"`
	Family  string `json:"family"`
}

// UnknownTagsInput is the input schema for the unknown_tags tool.
type UnknownTagsInput struct {
	Layer string `json:"layer,omitempty" jsonschema:"restrict the check to one layer code"`
}

// UnknownTagsOutput is the output schema for the unknown_tags tool.
type UnknownTagsOutput struct {
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ledger_entries",
		Description: "List the classified ledger annotations scraped from the manuscript",
	}, s.handleEntries)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "unknown_tags",
		Description: "List tags that are not covered by the tag registry",
	}, s.handleUnknownTags)
}

// handleEntries handles the ledger_entries tool invocation.
func (s *Server) handleEntries(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EntriesInput,
) (*mcp.CallToolResult, EntriesOutput, error) {
	filter := domain.Filter{Layer: input.Layer, Tag: input.Tag}

	entries, err := s.ports.Ledger.Entries(ctx, filter)
	if err != nil {
		return nil, EntriesOutput{}, err
	}

	output := EntriesOutput{
		Entries: make([]EntryOutput, len(entries)),
		Count:   len(entries),
	}

	for i := range entries {
		output.Entries[i] = EntryOutput{
			File:    entries[i].File,
			Section: entries[i].Section,
			Layer:   entries[i].Layer,
			Tag:     entries[i].Tag,
			Date:    entries[i].Date,
			Version: entries[i].Version,
			Note:    entries[i].Note,
			Family:  entries[i].Family.String(),
		}
	}

	return nil, output, nil
}

// handleUnknownTags handles the unknown_tags tool invocation.
func (s *Server) handleUnknownTags(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UnknownTagsInput,
) (*mcp.CallToolResult, UnknownTagsOutput, error) {
	tags, err := s.ports.Ledger.UnknownTags(ctx, domain.Filter{Layer: input.Layer})
	if err != nil {
		return nil, UnknownTagsOutput{}, err
	}

	return nil, UnknownTagsOutput{Tags: tags, Count: len(tags)}, nil
}
