// Package driven defines the driven ports (secondary adapters' contracts)
// for tagledger: where documents come from and where exported
// annotations go. Implementations live under internal/connectors and
// internal/adapters/driven.
package driven
