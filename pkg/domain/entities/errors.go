package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an item name is not in the store
	ErrNotFound = errors.New("item not found")
	// ErrNothingToUndo is returned by undo when the ledger is empty
	ErrNothingToUndo = errors.New("no actions to undo")
	// ErrMalformedExpiry marks a stored expiry that is not a YYYY-MM-DD date
	ErrMalformedExpiry = errors.New("malformed expiry date")
	// ErrNoExpiry marks a record without an expiry date
	ErrNoExpiry = errors.New("no expiry date")
)

// PersistenceError reports a failure reading or writing the durable file.
// A missing file on load is not a PersistenceError.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err with the failing operation and file path
func NewPersistenceError(op, path string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Path: path, Err: err}
}
