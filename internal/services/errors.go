package services

import (
	"errors"
	"fmt"
	"strings"

	"practicas-backend/internal/flow"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid document state")
	ErrUnauthorized = errors.New("unauthorized")
	ErrFlowComplete = errors.New("document flow complete")
)

// OutOfOrderError reports an attempt to act on a document whose required
// predecessors are not all accepted. Missing preserves canonical order.
type OutOfOrderError struct {
	Type    flow.DocumentType
	Missing []flow.DocumentType
}

func (e *OutOfOrderError) Error() string {
	names := make([]string, len(e.Missing))
	for i, t := range e.Missing {
		names[i] = string(t)
	}
	return fmt.Sprintf("%s requires accepted predecessors, missing: %s", e.Type, strings.Join(names, ", "))
}

// StorageInconsistencyError means the remote file store and the database
// diverged mid-transition: the file was renamed but the row update did not
// take. Both paths are carried for manual reconciliation.
type StorageInconsistencyError struct {
	OldPath string
	NewPath string
	Err     error
}

func (e *StorageInconsistencyError) Error() string {
	msg := fmt.Sprintf("storage inconsistency: file renamed %s -> %s but database row not updated", e.OldPath, e.NewPath)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StorageInconsistencyError) Unwrap() error {
	return e.Err
}
