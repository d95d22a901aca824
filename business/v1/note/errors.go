package note

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound covers both an unknown note id and a note owned by someone
// else, so a caller cannot probe for existence
var ErrNotFound = errors.New("note not found")

// Failure is one rejected field or uploaded file
type Failure struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates every failure of a request. Nothing has been
// persisted when it is returned.
type ValidationError struct {
	Failures []Failure
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// StorageError is a record or blob write that failed mid-operation, after
// compensating cleanup already ran
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
