package record

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidData = errors.New("invalid record data")
	ErrNoOwner     = errors.New("record owner is required")
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidData, msg)
}

// Invalid wraps ErrInvalidData with a human readable reason.
func Invalid(format string, args ...any) error {
	return invalid(fmt.Sprintf(format, args...))
}
