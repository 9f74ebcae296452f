package tui

import (
	"github.com/Illian-Amerond/tagledger/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Ledger runs the scrape-filter-classify pipeline.
	Ledger driving.Ledger
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Ledger == nil {
		return ErrMissingLedger
	}
	return nil
}
