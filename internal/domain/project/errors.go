package project

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates the requested record doesn't exist.
	ErrNotFound = errors.New("project record not found")
	// ErrWriteFailed indicates the store rejected a create/update/delete.
	ErrWriteFailed = errors.New("project write failed")
	// ErrQueryFailed indicates the store rejected a list/search.
	ErrQueryFailed = errors.New("project query failed")
	// ErrInvalidInput indicates invalid input for repository operations.
	ErrInvalidInput = errors.New("invalid project input")
)

// ErrorKind classifies a recorded failure.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindWriteFailed  ErrorKind = "write_failed"
	KindQueryFailed  ErrorKind = "query_failed"
	KindInvalidInput ErrorKind = "invalid_input"
)

// ErrorDetail is the last failure held by the state container. It is
// cleared when the next operation starts, not on acknowledgment.
type ErrorDetail struct {
	Op      string    `json:"op"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
