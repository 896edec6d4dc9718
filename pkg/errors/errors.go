// Package errors provides mtr's structured error type. Every error that can
// abort an operation carries a stable ErrorCode so that callers and tests can
// branch on the failure category rather than on message text.
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

	// Lifecycle errors. These abort the whole recursive tree of the
	// top-level request they occur in.
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrCycleDetected ErrorCode = "CYCLE_DETECTED"
	ErrNoRecipe      ErrorCode = "NO_RECIPE"
	ErrStepFailed    ErrorCode = "STEP_FAILED"

	// Ledger errors. LEDGER_CORRUPT is recovered by the store and only
	// ever logged.
	ErrLedgerCorrupt ErrorCode = "LEDGER_CORRUPT"
	ErrLedgerWrite   ErrorCode = "LEDGER_WRITE"

	// Index and recipe document errors
	ErrIndexFetch ErrorCode = "INDEX_FETCH"
	ErrIndexParse ErrorCode = "INDEX_PARSE"
	ErrRecipeLoad ErrorCode = "RECIPE_LOAD"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Editor errors
	ErrEditor ErrorCode = "EDITOR"
)

// MtrError represents a structured error with code and details
type MtrError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MtrError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MtrError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MtrError) Is(target error) bool {
	var targetErr *MtrError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MtrError with the given code and message
func New(code ErrorCode, message string) *MtrError {
	return &MtrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MtrError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MtrError {
	return &MtrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MtrError
func Wrap(err error, code ErrorCode, message string) *MtrError {
	if err == nil {
		return nil
	}
	return &MtrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MtrError {
	if err == nil {
		return nil
	}
	return &MtrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MtrError) WithDetail(key string, value interface{}) *MtrError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MtrError) WithDetails(details map[string]interface{}) *MtrError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mtrErr *MtrError
	if errors.As(err, &mtrErr) {
		return mtrErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MtrError
func GetErrorCode(err error) ErrorCode {
	var mtrErr *MtrError
	if errors.As(err, &mtrErr) {
		return mtrErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MtrError
func GetErrorDetails(err error) map[string]interface{} {
	var mtrErr *MtrError
	if errors.As(err, &mtrErr) {
		return mtrErr.Details
	}
	return nil
}

// As is the standard errors.As, re-exported so that packages importing
// this one under the name errors keep access to it.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
