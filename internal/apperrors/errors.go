package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConfiguration indicates that required business configuration is missing,
// e.g. a partner without any address to send statements to.
var ErrConfiguration = errors.New("configuration error")

// ErrUnsupportedCapability indicates that the configured rendering engine
// cannot produce the requested output.
var ErrUnsupportedCapability = errors.New("unsupported capability")

// ErrMalformedOutput indicates that a collaborator returned a value that
// cannot be used as binary content.
var ErrMalformedOutput = errors.New("malformed output")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewConfigurationError wraps ErrConfiguration with a message.
func NewConfigurationError(message string) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, message)
}
