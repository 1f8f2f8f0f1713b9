// Package errors defines the coded errors returned by ratiosplit.
//
// Every failure the allocation functions, the layout reader and the rule
// renderer can report carries a [Code]. The CLI prints the message, and
// the HTTP API returns the code next to it and picks the response status
// with [Code.HTTPStatus].
//
//	sizes, err := ratio.Resolve(total, edges)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // total or an edge was out of range
//	}
//
// Codes starting with INVALID_ describe bad caller input. FILE_NOT_FOUND
// is reported for missing layout files, and INTERNAL_ERROR for anything
// that is not the caller's fault.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable, machine-readable error identifier.
type Code string

const (
	// ErrCodeInvalidInput marks a negative total, size, ratio, minimum or
	// maximum, or parallel lists of different lengths.
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	// ErrCodeInvalidConfiguration marks input that is well formed but has
	// no valid allocation, such as Distribute with no positive weight.
	ErrCodeInvalidConfiguration Code = "INVALID_CONFIGURATION"
	ErrCodeInvalidFormat        Code = "INVALID_FORMAT"
	ErrCodeInvalidAlign         Code = "INVALID_ALIGN"
	ErrCodeInvalidPath          Code = "INVALID_PATH"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// HTTPStatus returns the response status the HTTP API uses for c.
// Unknown codes map to 500.
func (c Code) HTTPStatus() int {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidAlign,
		ErrCodeInvalidPath, ErrCodeUnsupported:
		return http.StatusBadRequest
	case ErrCodeInvalidConfiguration:
		return http.StatusUnprocessableEntity
	case ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is like New but records cause, which stays reachable through
// errors.Is and errors.As from the standard library.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the first *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "" when
// there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix or cause, or
// err.Error() for errors that carry no code.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
