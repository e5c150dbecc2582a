// Package yaerrors provides the error type returned across the module.
//
// An Error carries a status code, the sentinel cause and a human readable
// traceback built from the messages passed to Wrap on the way up the call stack:
//
//	read input -> flush and read: unexpected EOF
//
// Callers branch on the cause with errors.Is, the code only classifies the
// failure (4xx for rejected user input, 5xx for a broken console stream).
package yaerrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaQuickInput/yalogger"
)

// Error is an error with a status code and a wrap-aware traceback.
type Error interface {
	error
	Wrap(msg string) Error
	WrapWithLog(msg string, log yalogger.Logger) Error
	Code() int
	Unwrap() error
	UnwrapLastError() string
}

const (
	codeSeparate  = " | "
	errorSeparate = " -> "
)

type yaError struct {
	code      int
	cause     error
	traceback string
}

// FromError creates an Error from an existing cause.
// The traceback starts as "wrap: cause".
//
// Example usage:
//
//	return yaerrors.FromError(http.StatusBadRequest, ErrOutOfRange, "parse uint8")
func FromError(code int, cause error, wrap string) Error {
	return &yaError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromErrorWithLog is FromError that also writes the traceback to log at Error level.
func FromErrorWithLog(code int, cause error, wrap string, log yalogger.Logger) Error {
	msg := fmt.Sprintf("%s: %v", wrap, cause)
	log.Error(msg)

	return &yaError{
		code:      code,
		cause:     cause,
		traceback: msg,
	}
}

// FromString creates an Error whose cause is a new error built from msg.
func FromString(code int, msg string) Error {
	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// FromStringWithLog is FromString that also logs msg at Error level.
func FromStringWithLog(code int, msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return FromString(code, msg)
}

// Is reports whether err is a non-nil Error whose cause matches target.
// It spares callers a type assertion when they hold a yaerrors.Error.
func Is(err Error, target error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err.Unwrap(), target)
}

// IsServerError reports whether err carries a 5xx code.
func IsServerError(err Error) bool {
	return err != nil && err.Code() >= http.StatusInternalServerError
}

// Error returns "code | traceback".
func (e *yaError) Error() string {
	safetyCheck(&e)

	return fmt.Sprintf("%d%s%s", e.code, codeSeparate, e.traceback)
}

// Unwrap returns the original cause.
func (e *yaError) Unwrap() error {
	safetyCheck(&e)

	return e.cause
}

// UnwrapLastError returns the outermost message of the traceback.
func (e *yaError) UnwrapLastError() string {
	safetyCheck(&e)

	head, _, found := strings.Cut(e.traceback, errorSeparate)
	if !found {
		return e.traceback
	}

	return head
}

// Wrap prepends msg to the traceback. Call it each time the error crosses a
// function boundary so the traceback reads outermost first.
//
// Example usage:
//
//	if err != nil {
//		return zero, err.Wrap("read int32")
//	}
func (e *yaError) Wrap(msg string) Error {
	safetyCheck(&e)
	e.traceback = msg + errorSeparate + e.traceback

	return e
}

// WrapWithLog is Wrap that also logs msg at Error level.
func (e *yaError) WrapWithLog(msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return e.Wrap(msg)
}

// Code returns the status code.
func (e *yaError) Code() int {
	safetyCheck(&e)

	return e.code
}

// safetyCheck replaces a nil receiver with the teapot error.
func safetyCheck(err **yaError) {
	if *err == nil {
		*err = &yaError{
			code:      http.StatusTeapot,
			cause:     ErrTeapot,
			traceback: ErrTeapot.Error(),
		}
	}
}
