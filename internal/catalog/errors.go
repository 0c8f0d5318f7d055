package catalog

import "errors"

// Common errors returned by the catalog package
var (
	// ErrEmptyPool is returned when sampling is attempted against an empty
	// vendor or category pool. This is the only fatal error in the core.
	ErrEmptyPool = errors.New("vendor or category pool is empty")

	// ErrDuplicateTitle is returned when a generated title already exists for
	// the vendor. Used as a per-attempt rejection reason, never escalated.
	ErrDuplicateTitle = errors.New("title already exists for vendor")

	// ErrAttemptsExhausted is returned when a combination produced no
	// acceptable record within the attempt budget. Soft failure: the
	// combination is dropped and the batch continues.
	ErrAttemptsExhausted = errors.New("attempt budget exhausted")
)
