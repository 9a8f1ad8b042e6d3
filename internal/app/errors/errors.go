package errors

import (
	"fmt"
)

// Pipeline errors
var (
	ErrUnsupportedFormat = New("unsupported media format")
	ErrToolNotFound      = New("external tool not found in PATH")
	ErrProbeFailed       = New("media probe failed")
	ErrInvalidDuration   = New("media duration must be greater than zero")
	ErrExtractionFailed  = New("audio extraction failed")
	ErrCompressionFailed = New("audio compression failed")
)

// Transcription provider errors. Each class maps to a distinct
// user-facing diagnostic, so callers match with errors.Is.
var (
	ErrProviderAuth      = New("provider authentication failed")
	ErrProviderRateLimit = New("provider rate limit exceeded")
	ErrProviderNetwork   = New("provider network error")
	ErrProviderFormat    = New("provider rejected media format")
)

// History store errors
var (
	ErrRecordNotFound = New("history record not found")
)

// Error carries a stable message and an optional cause. Two Errors
// compare equal under errors.Is when their messages match, which is
// what lets the sentinel values above classify wrapped failures.
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a sentinel, keeping the sentinel matchable.
func Wrap(sentinel *Error, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &Error{message: sentinel.message, cause: cause}
}

// Wrapf attaches a formatted cause description to a sentinel.
func Wrapf(sentinel *Error, format string, args ...interface{}) error {
	return &Error{message: sentinel.message, cause: fmt.Errorf(format, args...)}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}
