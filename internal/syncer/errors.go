package syncer

import (
	"errors"
	"fmt"

	"registrySync/internal/model"
)

// ErrMismatch is returned by callers that treat recorded mismatches as failure.
var ErrMismatch = errors.New("registry does not match dataset")

// WriteError reports a registry write that was rejected or never confirmed.
// The run stops at the first one.
type WriteError struct {
	Entry string
	Kind  model.ObservationKind
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s for %s: %v", e.Kind, e.Entry, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ReadError reports a read-back that failed for reasons other than a revert,
// so nothing can be concluded about the stored value.
type ReadError struct {
	Entry string
	Kind  model.ObservationKind
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s for %s: %v", e.Kind, e.Entry, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
