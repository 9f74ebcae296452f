// Package tui provides the interactive ledger browser following the
// Elm architecture. It lists classified annotations, supports fuzzy
// filtering, and shows a detail pane for the selected entry.
package tui

import "errors"

// ErrMissingLedger is returned when the ledger port is not provided.
var ErrMissingLedger = errors.New("tui: ledger service is required")
