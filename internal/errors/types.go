package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a categorized error type
type ErrorCode string

const (
	// ErrCodeTransport marks a failed or interrupted platform API call.
	// Fatal: unwinds the current event's processing.
	ErrCodeTransport ErrorCode = "TRANSPORT_FAILURE"
	// ErrCodeContentFetch marks a failure to fetch heavy content by ID.
	// Fatal after a best-effort explanatory reply.
	ErrCodeContentFetch ErrorCode = "CONTENT_FETCH"
	// ErrCodeExternalTool marks a non-zero exit from a transcoder tool.
	// Logged only; processing continues.
	ErrCodeExternalTool ErrorCode = "EXTERNAL_TOOL"
	// ErrCodeValidation marks input rejected before any network call,
	// e.g. an empty reply token where a non-empty one is required.
	ErrCodeValidation ErrorCode = "VALIDATION"

	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// AppError is a structured application error carrying its category.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an existing error with a category and context message
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// GetCode extracts the error code from an error chain
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether any error in the chain carries the given code
func HasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
