package store

import "errors"

var (
	// ErrNotFound is returned when the requested document doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned for blank collections or ids, or an
	// unknown filter operator or sort direction.
	ErrInvalidInput = errors.New("invalid input")
)
