package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state")
	ErrStorage      = errors.New("storage failure")
	ErrNotFound     = errors.New("not found")

	ErrNoActiveSession     = fmt.Errorf("%w: no active session", ErrInvalidState)
	ErrActiveSessionExists = fmt.Errorf("%w: active session already exists", ErrInvalidState)
)

// Validation wraps a message as ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// InvalidState wraps a message as ErrInvalidState.
func InvalidState(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// Storage marks err as a storage failure while keeping it inspectable.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
