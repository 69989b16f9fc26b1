package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the lookup/update/remove target does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateSlug indicates another product already holds the same slug.
	// The wrapping error carries the constraint-violation detail.
	ErrDuplicateSlug = errors.New("product slug already exists")

	// ErrInvalidProduct indicates the product violates domain constraints.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrTxAborted indicates a failure after a transaction was opened; the
	// transaction has been rolled back and no partial write is visible.
	ErrTxAborted = errors.New("transaction aborted")
)
