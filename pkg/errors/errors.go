// Package errors provides structured error types for the graphops toolkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the core packages and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes identify the failure category rather than the concrete type:
//   - INVARIANT_*: graph invariant violations (duplicate node, duplicate edge, ...)
//   - CYCLE_DETECTED: a closure hit a directed cycle with no cycle sink
//   - MALFORMED_INPUT: unreadable or inconsistent graph snapshots
//   - NOT_FOUND: a lookup that is documented to fail hard missed
//   - IO_ERROR: file read/write failures, surfaced unchanged
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicateNode, "node %q already exists", key)
//	if errors.Is(err, errors.ErrCodeDuplicateNode) {
//	    // Handle invariant violation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
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
	// Invariant violations. Fatal to the operation; the graph is unchanged.
	ErrCodeDuplicateNode   Code = "INVARIANT_DUPLICATE_NODE"
	ErrCodeDuplicateEdge   Code = "INVARIANT_DUPLICATE_EDGE"
	ErrCodeUnknownEndpoint Code = "INVARIANT_UNKNOWN_ENDPOINT"
	ErrCodeClassConflict   Code = "INVARIANT_CLASS_CONFLICT"

	// Cycle detected during a reach/domain closure without a cycle sink.
	ErrCodeCycle Code = "CYCLE_DETECTED"

	// Input that cannot be decoded into a graph.
	ErrCodeMalformedInput Code = "MALFORMED_INPUT"

	// Hard lookup failures.
	ErrCodeNotFound Code = "NOT_FOUND"

	// File read/write failures.
	ErrCodeIO Code = "IO_ERROR"
)

// Error carries a category code alongside the human-readable message and,
// when wrapping, the underlying cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error renders the code, the message and any cause, joined with ": ".
func (e *Error) Error() string {
	parts := []string{string(e.Code), e.Message}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap exposes the cause to the standard errors package.
func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error in the given category.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error in the given category around an existing cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// GetCode returns the category of err, or the empty string when no *Error
// is found in its chain.
func GetCode(err error) Code {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Code
}

// Is reports whether err belongs to the given category, looking through
// any wrapping.
func Is(err error, code Code) bool {
	return code != "" && GetCode(err) == code
}

// UserMessage strips the category prefix for display: the message alone
// for Error values, err.Error() for anything else.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
