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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Resolution errors
	ErrHomeNotSet       ErrorCode = "HOME_NOT_SET"
	ErrRuntimeDirNotSet ErrorCode = "RUNTIME_DIR_NOT_SET"
	ErrInvalidAppName   ErrorCode = "INVALID_APP_NAME"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// XDGError represents a structured error with code and details
type XDGError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *XDGError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *XDGError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *XDGError) Is(target error) bool {
	var targetErr *XDGError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new XDGError with the given code and message
func New(code ErrorCode, message string) *XDGError {
	return &XDGError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new XDGError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *XDGError {
	return &XDGError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an XDGError
func Wrap(err error, code ErrorCode, message string) *XDGError {
	if err == nil {
		return nil
	}
	return &XDGError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *XDGError {
	if err == nil {
		return nil
	}
	return &XDGError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *XDGError) WithDetail(key string, value interface{}) *XDGError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *XDGError) WithDetails(details map[string]interface{}) *XDGError {
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
	var xdgErr *XDGError
	if errors.As(err, &xdgErr) {
		return xdgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an XDGError
func GetErrorCode(err error) ErrorCode {
	var xdgErr *XDGError
	if errors.As(err, &xdgErr) {
		return xdgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an XDGError
func GetErrorDetails(err error) map[string]interface{} {
	var xdgErr *XDGError
	if errors.As(err, &xdgErr) {
		return xdgErr.Details
	}
	return nil
}
