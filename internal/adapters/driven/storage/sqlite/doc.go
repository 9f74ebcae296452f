// Package sqlite persists classified annotations into a SQLite ledger
// database. It implements the AnnotationStore driven port as a pure
// export sink: rows are written for downstream consumers and never
// read back into the scrape pipeline.
package sqlite
