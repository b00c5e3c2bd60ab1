package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record is missing so HTTP handlers can
// respond with 404.
var ErrNotFound = errors.New("record not found")

// ValidationError marks client input problems. Handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
