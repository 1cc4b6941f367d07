package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrUnknownField = errors.New("unknown product field")
)

// NotFoundError is returned when an operation targets an id that has no
// record. It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("product %d not found", e.ID) }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InputError reports a raw value that could not be coerced to the type of
// the field it was meant for.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
