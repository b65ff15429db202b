// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors so that the exit status can
// be chosen without parsing error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// non-positive prices or quantities, malformed billing details,
	// unparseable numbers. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryUsage indicates the command line itself was wrong: unknown
	// command or flag, wrong argument count.
	CategoryUsage ErrorCategory = "usage"

	// CategoryNotFound indicates a referenced id does not exist in the
	// catalog or cart. Retrying with the same parameters will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryTransient indicates a temporary failure, such as the cart
	// lock being held by another invocation. The caller may retry.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error: corrupt collection
	// files, I/O failures, bugs. The caller should report the error
	// rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands.
//
// ToolError wraps an inner error, preserving the full error chain for
// debugging while adding category metadata. Use the category-specific
// constructors (Validation, NotFound, etc.) rather than constructing
// ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The category is not
// included in the string.
func (e *ToolError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// ExitCode returns 1 for internal errors and 2 for everything else.
func (e *ToolError) ExitCode() int {
	if e.Category == CategoryInternal {
		return 1
	}
	return 2
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Usage creates a usage error: the command line could not be parsed.
func Usage(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryUsage, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced id does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
