// Package errors provides structured error types for techradar.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI, HTTP API and MCP tools
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Parameter and input validation failures
//   - *NOT_FOUND: Resource not found
//   - RENDER_FAILED, INTERNAL_ERROR: Unexpected failures
//
// Geometry validation errors are fatal: a radius profile is either computed
// completely or not at all. Per-blip placement problems are not errors; they
// are reported as skip reasons by the placement package.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRadius, "radius must be >= 1, got %g", r)
//	if errors.Is(err, errors.ErrCodeInvalidRadius) {
//	    // Handle validation error
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput        Code = "INVALID_INPUT"
	ErrCodeInvalidRadius       Code = "INVALID_RADIUS"
	ErrCodeInvalidRingCount    Code = "INVALID_RING_COUNT"
	ErrCodeInvalidSegmentCount Code = "INVALID_SEGMENT_COUNT"
	ErrCodeInvalidPolicy       Code = "INVALID_POLICY"
	ErrCodeInvalidShape        Code = "INVALID_SHAPE"
	ErrCodeInvalidFormat       Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig       Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
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

// HTTPStatus maps an error to the status code the HTTP API responds with.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidRadius, ErrCodeInvalidRingCount,
		ErrCodeInvalidSegmentCount, ErrCodeInvalidPolicy, ErrCodeInvalidShape,
		ErrCodeInvalidFormat, ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
