package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known failure categories of the colour domain.
type ErrorCode string

const (
	ErrCodeInvalidColor ErrorCode = "INVALID_COLOR_FORMAT"
	ErrCodeUnderflow    ErrorCode = "STORE_UNDERFLOW"
	ErrCodeUnknownStop  ErrorCode = "UNKNOWN_STOP_ID"
	ErrCodeEmptyStops   ErrorCode = "EMPTY_STOPS"
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE"
)

// Sentinels usable with errors.Is. Errors returned by the domain carry extra
// context but keep the code and message of one of these.
var (
	ErrInvalidColorFormat = &DomainError{Code: ErrCodeInvalidColor, Message: "invalid hex color"}
	ErrStoreUnderflow     = &DomainError{Code: ErrCodeUnderflow, Message: "a gradient needs at least two stops"}
	ErrUnknownStopID      = &DomainError{Code: ErrCodeUnknownStop, Message: "unknown stop id"}
	ErrEmptyStops         = &DomainError{Code: ErrCodeEmptyStops, Message: "no stops to interpolate"}
	ErrInvalidValue       = &DomainError{Code: ErrCodeInvalidValue, Message: "invalid value"}
)

// DomainError represents a typed error enriched with contextual data.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches another DomainError with the same code and message.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code && e.Message == domainErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// WithCause clones the error wrapping the supplied cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	if e == nil {
		return nil
	}
	clone := e.WithContext(nil)
	clone.Cause = cause
	return clone
}

// CodeOf returns the code of the first DomainError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return "", false
	}
	return domainErr.Code, true
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures preference and flag validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
