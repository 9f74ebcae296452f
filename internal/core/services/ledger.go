package services

import (
	"context"
	"fmt"

	"github.com/Illian-Amerond/tagledger/internal/classify"
	"github.com/Illian-Amerond/tagledger/internal/core/domain"
	"github.com/Illian-Amerond/tagledger/internal/core/ports/driven"
	"github.com/Illian-Amerond/tagledger/internal/core/ports/driving"
	"github.com/Illian-Amerond/tagledger/internal/logger"
	"github.com/Illian-Amerond/tagledger/internal/scrape"
)

// Ensure LedgerService implements the driving port.
var _ driving.Ledger = (*LedgerService)(nil)

// LedgerService runs the annotation pipeline over a document source
// with a resolved registry. The registry is built once and read-only;
// documents are re-read on every call.
type LedgerService struct {
	source   driven.Source
	registry domain.Registry
}

// NewLedgerService creates a ledger service.
func NewLedgerService(source driven.Source, registry domain.Registry) *LedgerService {
	return &LedgerService{source: source, registry: registry}
}

// Registry returns the resolved registry the service classifies with.
func (s *LedgerService) Registry() domain.Registry {
	return s.registry.Clone()
}

// Entries implements driving.Ledger.
func (s *LedgerService) Entries(ctx context.Context, filter domain.Filter) ([]domain.Annotation, error) {
	docs, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	records := scrape.Documents(docs)
	logger.Debug("scraped %d annotations from %d documents", len(records), len(docs))

	records = filter.Apply(records)
	return classify.Annotations(records, s.registry), nil
}

// UnknownTags implements driving.Ledger.
func (s *LedgerService) UnknownTags(ctx context.Context, filter domain.Filter) ([]string, error) {
	classified, err := s.Entries(ctx, filter)
	if err != nil {
		return nil, err
	}
	return classify.UnknownTags(classified), nil
}
