// Package apperr defines the sentinel errors shared across layers.
// Handlers map them onto HTTP statuses: validation to 400, not-found to
// 404, persistence (and anything unclassified) to a generic 500.
package apperr

import "errors"

var (
	// ErrValidation marks malformed or missing input. The request is
	// rejected before any side effect.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced record that does not exist or does
	// not belong to the caller. The two cases are indistinguishable so
	// other tenants' data never leaks.
	ErrNotFound = errors.New("not found")

	// ErrPersistence marks a storage write failure. The record is
	// considered not created; nothing is retried.
	ErrPersistence = errors.New("persistence failure")
)
