// Package services implements the driving ports over the driven ones.
// The only service here is the ledger pipeline: discover documents,
// scrape annotations, filter, classify.
package services
