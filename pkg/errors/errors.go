package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule table errors. These are startup-only: the built-in table either
	// compiles or the process does not start.
	ErrPatternCompile ErrorCode = "PATTERN_COMPILE"
	ErrRuleInvalid    ErrorCode = "RULE_INVALID"

	// Clipboard errors
	ErrClipboardUnavailable ErrorCode = "CLIPBOARD_UNAVAILABLE"
	ErrClipboardNotText     ErrorCode = "CLIPBOARD_NOT_TEXT"
	ErrClipboardRead        ErrorCode = "CLIPBOARD_READ"
	ErrClipboardWrite       ErrorCode = "CLIPBOARD_WRITE"

	// Watcher errors
	ErrWatcherSetup ErrorCode = "WATCHER_SETUP"
)

// ClipfixError represents a structured error with code and details
type ClipfixError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ClipfixError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ClipfixError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a ClipfixError with the same code
func (e *ClipfixError) Is(target error) bool {
	var targetErr *ClipfixError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ClipfixError with the given code and message
func New(code ErrorCode, message string) *ClipfixError {
	return &ClipfixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ClipfixError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ClipfixError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &ClipfixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *ClipfixError) WithDetail(key string, value interface{}) *ClipfixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var clipErr *ClipfixError
	if errors.As(err, &clipErr) {
		return clipErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ClipfixError
func GetErrorCode(err error) ErrorCode {
	var clipErr *ClipfixError
	if errors.As(err, &clipErr) {
		return clipErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ClipfixError
func GetErrorDetails(err error) map[string]interface{} {
	var clipErr *ClipfixError
	if errors.As(err, &clipErr) {
		return clipErr.Details
	}
	return nil
}
