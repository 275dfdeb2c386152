// Package errors provides structured error types for the floret application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - CONFIGURATION_*: invalid or contradictory scan parameters
//   - RANGE_*: parameter combinations producing a physically meaningless scan
//   - INTERNAL_*: unexpected internal errors
//
// Configuration errors are always raised before any computation proceeds;
// a failed call never returns a partial result.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMode, "unknown scan mode: %q", mode)
//	if errors.IsConfiguration(err) {
//	    // Handle as a caller mistake
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors: the caller supplied invalid parameters.
	ErrCodeConfiguration Code = "CONFIGURATION_ERROR"
	ErrCodeExclusive     Code = "CONFIGURATION_EXCLUSIVE"
	ErrCodeBounds        Code = "CONFIGURATION_BOUNDS"
	ErrCodeBatchSize     Code = "CONFIGURATION_BATCH_SIZE"
	ErrCodeMode          Code = "CONFIGURATION_MODE"
	ErrCodeOrderBy       Code = "CONFIGURATION_ORDER_BY"
	ErrCodeShape         Code = "CONFIGURATION_SHAPE"
	ErrCodeFormat        Code = "CONFIGURATION_FORMAT"

	// Range errors: individually valid parameters combined into a scan
	// that cannot be realized on the instrument.
	ErrCodeRange       Code = "RANGE_ERROR"
	ErrCodeRangeEmpty  Code = "RANGE_EMPTY"
	ErrCodeRangeDomain Code = "RANGE_DOMAIN"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsConfiguration reports whether err carries any CONFIGURATION_* code.
func IsConfiguration(err error) bool {
	return strings.HasPrefix(string(GetCode(err)), "CONFIGURATION")
}

// IsRange reports whether err carries any RANGE_* code.
func IsRange(err error) bool {
	return strings.HasPrefix(string(GetCode(err)), "RANGE")
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
