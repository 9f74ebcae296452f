package mcp

import (
	"github.com/Illian-Amerond/tagledger/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ledger runs the scrape-filter-classify pipeline.
	Ledger driving.Ledger
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ledger == nil {
		return ErrMissingLedger
	}
	return nil
}
