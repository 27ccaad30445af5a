package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrTransactionInProgress indicates a Begin while a transaction is already
// open on the same unit of work. Programmer error, never retried.
var ErrTransactionInProgress = errors.New("a transaction is already in progress")

// ErrNoTransaction indicates a Commit or Rollback without an open
// transaction. Programmer error, never retried.
var ErrNoTransaction = errors.New("no transaction is in progress")

// AppError wraps an underlying error with a status code and a safe message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }
