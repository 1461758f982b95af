package services

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	// ErrNotFound covers both unknown and closed polls.
	ErrNotFound = errors.New("no poll found or it has finished")
	ErrConflict = errors.New("target item already has an open poll")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StoreError wraps a failure of the underlying storage. The cause is not
// interpreted.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	var storeErr *StoreError
	if errors.As(err, &storeErr) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) || errors.Is(err, ErrConflict) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
