package driven

import (
	"context"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// AnnotationStore persists classified annotations chosen for export.
// It is a write-only sink: nothing is ever read back into the pipeline.
type AnnotationStore interface {
	// SaveAnnotations writes the records and returns how many were stored.
	SaveAnnotations(ctx context.Context, records []domain.Annotation) (int, error)

	// Close releases the underlying resources.
	Close() error
}
