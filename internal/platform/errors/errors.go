package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable message
	Metadata map[string]string // Additional context, e.g. the offending value
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata describing the input
// that triggered it.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Detail returns a copy of base carrying message and metadata. The copy still
// matches base under errors.Is, which lets packages declare sentinel errors
// and attach the offending value at the call site.
func Detail(base *Error, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     base.Code,
		Message:  message,
		Metadata: maps.Clone(metadata),
		Cause:    base.Cause,
	}
}

// GetCode extracts the error code from an error chain.
// Returns CodeUnknown if no domain error is found.
func GetCode(err error) Code {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// IsConfiguration reports whether err carries a configuration error code.
func IsConfiguration(err error) bool {
	return GetCode(err).Kind() == KindConfiguration
}
