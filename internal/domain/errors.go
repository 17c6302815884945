package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNotAuthorized      = errors.New("not found or you don't have permission to access it")
	ErrQuotaExceeded      = errors.New("subscription quota exceeded")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("email or password is not valid")
	ErrUnauthenticated    = errors.New("authentication credentials were not provided or are invalid")
)

// Validationf returns an error wrapping ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return &classifiedError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// Quotaf returns an error wrapping ErrQuotaExceeded with a formatted message.
func Quotaf(format string, args ...any) error {
	return &classifiedError{kind: ErrQuotaExceeded, msg: fmt.Sprintf(format, args...)}
}

// classifiedError carries a client-facing message while still matching its
// sentinel through errors.Is.
type classifiedError struct {
	kind error
	msg  string
}

func (e *classifiedError) Error() string { return e.msg }

func (e *classifiedError) Unwrap() error { return e.kind }
