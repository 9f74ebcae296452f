// Package scrape extracts ledger annotations from TeX section documents.
//
// It recognises a fixed set of line patterns rather than parsing TeX:
// the \Tag annotation grammar, the SectionHeaderLedger/SectionFooterLedger
// block delimiters, and the \Section declaration used for attribution.
// All other markup passes through unmatched.
package scrape
