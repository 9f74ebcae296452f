package mcp

import (
	"context"

	"github.com/Illian-Amerond/tagledger/internal/core/domain"
)

// mockLedger is a mock implementation of driving.Ledger.
type mockLedger struct {
	entries []domain.Annotation
	unknown []string
	err     error

	gotFilter domain.Filter
}

func (m *mockLedger) Entries(_ context.Context, filter domain.Filter) ([]domain.Annotation, error) {
	m.gotFilter = filter
	return m.entries, m.err
}

func (m *mockLedger) UnknownTags(_ context.Context, filter domain.Filter) ([]string, error) {
	m.gotFilter = filter
	return m.unknown, m.err
}
