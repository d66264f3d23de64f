package port

import "errors"

var (
	// ErrNoEligibleLink is returned by the rotation when no link passes the
	// eligibility filter. Callers serve the fallback destination.
	ErrNoEligibleLink = errors.New("no eligible link")
	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on unique constraint violations.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")
)
