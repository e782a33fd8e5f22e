package service

import "errors"

// Error taxonomy for the admission workflow. Callers classify outcomes
// with errors.Is; anything wrapping ErrStore carries the underlying
// persistence error as its cause.
var (
	// ErrNotFound marks a missing patient, doctor, department or ward.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an invariant violation: a second current admission,
	// an occupied or out-of-range bed, or deleting an admitted patient.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput marks a request rejected before any store access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStore marks an underlying persistence failure.
	ErrStore = errors.New("store failure")
)
