package driving

import (
	"context"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// Ledger runs the scrape-filter-classify pipeline on demand.
// Every call re-reads the source documents: the pipeline holds no
// state between invocations, so watch, TUI and MCP callers always
// see the files as they currently are.
type Ledger interface {
	// Entries returns the classified annotations passing the filter,
	// in scrape order.
	Entries(ctx context.Context, filter domain.Filter) ([]domain.Annotation, error)

	// UnknownTags returns the sorted distinct tags that classified to
	// FamilyUnknown under the filter. Diagnostic only.
	UnknownTags(ctx context.Context, filter domain.Filter) ([]string, error)
}
