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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateParse    ErrorCode = "TEMPLATE_PARSE"
	ErrTemplateRender   ErrorCode = "TEMPLATE_RENDER"

	// Plan errors
	ErrPlanParse    ErrorCode = "PLAN_PARSE"
	ErrPlanLock     ErrorCode = "PLAN_LOCK"
	ErrChangeExists ErrorCode = "CHANGE_EXISTS"

	// FileSystem errors
	ErrFileOpen  ErrorCode = "FILE_OPEN"
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrFileClose ErrorCode = "FILE_CLOSE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// SchemerError represents a structured error with code and details
type SchemerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SchemerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SchemerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SchemerError) Is(target error) bool {
	var targetErr *SchemerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SchemerError with the given code and message
func New(code ErrorCode, message string) *SchemerError {
	return &SchemerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SchemerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SchemerError {
	return &SchemerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SchemerError
func Wrap(err error, code ErrorCode, message string) *SchemerError {
	if err == nil {
		return nil
	}
	return &SchemerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SchemerError {
	if err == nil {
		return nil
	}
	return &SchemerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SchemerError) WithDetail(key string, value interface{}) *SchemerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var schemerErr *SchemerError
	if errors.As(err, &schemerErr) {
		return schemerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SchemerError
func GetErrorCode(err error) ErrorCode {
	var schemerErr *SchemerError
	if errors.As(err, &schemerErr) {
		return schemerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SchemerError
func GetErrorDetails(err error) map[string]interface{} {
	var schemerErr *SchemerError
	if errors.As(err, &schemerErr) {
		return schemerErr.Details
	}
	return nil
}
