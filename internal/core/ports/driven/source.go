package driven

import (
	"context"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// Source supplies the documents a scrape runs over.
type Source interface {
	// Discover returns the document paths in deterministic
	// (lexicographic) order. Used for reporting and for watch setup.
	Discover() ([]string, error)

	// Load reads every discovered document. Individual unreadable
	// documents are diagnosed and skipped, never fatal; Load only
	// fails when the source itself is unusable.
	Load(ctx context.Context) ([]domain.SourceDocument, error)
}
