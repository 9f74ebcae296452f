package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownGroupKey indicates a group-by field outside {tag, layer, section}.
	ErrUnknownGroupKey = errors.New("unknown group key")

	// ErrUnknownFormat indicates an export format outside {raw, grouped}.
	ErrUnknownFormat = errors.New("unknown export format")

	// ErrNoDocuments indicates discovery found nothing to scrape.
	// Callers usually downgrade this to a notice rather than failing.
	ErrNoDocuments = errors.New("no documents found")
)
