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

// ErrForbidden indicates that the caller may not perform the requested action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure inside the service.
var ErrInternal = errors.New("internal error")

// ErrRemote indicates that a collaborator (database or billing API) could not be
// reached or answered with an unexpected error. Callers decide whether to retry.
var ErrRemote = errors.New("remote collaborator error")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
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

// NewRemoteError wraps a collaborator failure so that errors.Is(err, ErrRemote) holds.
func NewRemoteError(message string, err error) *AppError {
	return &AppError{Code: 502, Message: message, Err: fmt.Errorf("%w: %w", ErrRemote, err)}
}
