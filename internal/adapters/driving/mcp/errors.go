// Package mcp provides an MCP (Model Context Protocol) server adapter
// for tagledger. It lets AI assistants query the classified annotation
// ledger of a manuscript tree over stdio or HTTP.
package mcp

import "errors"

// ErrMissingLedger is returned when the ledger port is not provided.
var ErrMissingLedger = errors.New("mcp: ledger service is required")
