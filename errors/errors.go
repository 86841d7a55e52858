package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Error is the error type used throughout cxearley.
type Error struct {
	// Code is a non-zero error code; see the *Errors base constants in
	// the errors.go file of each subpackage.
	Code int

	// Message is a human-readable description, including the byte
	// position in the input when one is known.
	Message string

	// Pos is the byte offset into the input the error refers to, or -1
	// if the error is not tied to a position (e.g. a grammar-registration
	// error).
	Pos int

	// Cause is the underlying error this one wraps, if any.
	Cause error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap lets errors.Is / errors.As reach Cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with position information appended to msg when pos >= 0.
func New(code int, msg string, pos int) *Error {
	if pos >= 0 {
		msg = fmt.Sprintf("%s at byte %d", msg, pos)
	}
	return &Error{Code: code, Message: msg, Pos: pos}
}

// Format creates an Error with no position information.
// params, if given, are applied to msg with fmt.Sprintf.
func Format(code int, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return New(code, msg, -1)
}

// FormatPos creates an Error tied to a byte position.
func FormatPos(pos int, code int, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return New(code, msg, pos)
}

// Wrap creates an Error whose Cause carries cause's message and stack,
// via github.com/pkg/errors, for errors originating outside this module
// (e.g. regexp.Compile failures).
func Wrap(code int, cause error, msg string) *Error {
	e := New(code, msg, -1)
	e.Cause = pkgerrors.Wrap(cause, msg)
	return e
}
