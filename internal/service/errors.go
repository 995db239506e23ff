package service

import (
	"errors"
	"fmt"
)

// Domain error kinds. Handlers map these to HTTP status codes; anything else
// that reaches the boundary is treated as an infrastructure error and hidden
// behind a generic 500.
var (
	ErrNotFound          = errors.New("no encontrado")
	ErrInvalidTransition = errors.New("transicion de estado no permitida")
)

// ValidationError signals malformed or missing input detected by the service
// layer (the HTTP layer additionally runs struct-tag validation).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a domain validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
