// Package driving defines the driving ports through which primary
// adapters (CLI, TUI, MCP) invoke the core ledger pipeline.
package driving
