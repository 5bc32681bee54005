package util

import (
	"errors"
	"net/http"
)

// AppError carries the HTTP status and a stable code for a failure.
// Err holds the internal cause and is never shown outside development mode.
type AppError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches any AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeStorage      = "STORAGE_FAILURE"
	CodeAggregation  = "AGGREGATION_FAILURE"
	CodeInternal     = "INTERNAL_ERROR"
)

var (
	ErrValidation   = &AppError{Status: http.StatusBadRequest, Code: CodeValidation, Message: "Invalid input"}
	ErrUnauthorized = &AppError{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: "Unauthorized"}
	ErrForbidden    = &AppError{Status: http.StatusForbidden, Code: CodeForbidden, Message: "Forbidden"}
	ErrNotFound     = &AppError{Status: http.StatusNotFound, Code: CodeNotFound, Message: "Resource not found"}
	ErrConflict     = &AppError{Status: http.StatusConflict, Code: CodeConflict, Message: "Conflict"}
	ErrStorage      = &AppError{Status: http.StatusInternalServerError, Code: CodeStorage, Message: "Storage failure"}
	ErrAggregation  = &AppError{Status: http.StatusInternalServerError, Code: CodeAggregation, Message: "Error fetching performance data"}

	ErrUserNotFound       = NewError(ErrNotFound, "User not found")
	ErrQuestionNotFound   = NewError(ErrNotFound, "Question not found")
	ErrEmailRegistered    = NewError(ErrConflict, "Email already registered")
	ErrInvalidCredentials = NewError(ErrUnauthorized, "Invalid credentials")
	ErrTokenRevoked       = NewError(ErrUnauthorized, "Token has been revoked")
)

// NewError derives an error of the given kind with its own message.
func NewError(kind *AppError, message string) *AppError {
	return &AppError{Status: kind.Status, Code: kind.Code, Message: message}
}

// Wrap attaches an internal cause to an error of the given kind.
func Wrap(kind *AppError, err error) *AppError {
	return &AppError{Status: kind.Status, Code: kind.Code, Message: kind.Message, Err: err}
}

// Validation builds a 400 with a caller-facing message.
func Validation(message string) *AppError {
	return NewError(ErrValidation, message)
}

// StorageFailure wraps a store error unless it is already classified.
func StorageFailure(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	return Wrap(ErrStorage, err)
}

// AsAppError classifies err, defaulting to an internal error.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "Internal server error", Err: err}
}
