package postgres

import (
	"errors"
	"fmt"
)

// Common store errors.
var (
	// ErrTaskNotFound is returned when a mutation matches no row, either
	// because the task id does not exist or (for updates) the row is
	// soft-deleted. Callers treat this as a normal outcome, not a fault.
	ErrTaskNotFound = errors.New("task not found")
)

// StoreError wraps a storage failure with the operation that produced it.
type StoreError struct {
	Operation string // The operation that failed (e.g., "create", "list")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on task failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on task failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// newStoreError creates a StoreError for the given operation.
func newStoreError(operation, message string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
