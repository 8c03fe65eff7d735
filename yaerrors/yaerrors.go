package yaerrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaCliUtils/yalogger"
)

// Error is the error type returned by every package of this module.
// It carries a status-like code, the sentinel cause (so errors.Is keeps working)
// and a human readable traceback that grows with each Wrap while the error
// travels up the call stack.
type Error interface {
	error
	Wrap(msg string) Error
	Wrapf(format string, args ...any) Error
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

// FromError creates an Error from a cause with a code and a context message.
// The cause is kept as is, so errors.Is(err, cause) holds for the result.
func FromError(code int, cause error, wrap string) Error {
	return &yaError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromErrorf is FromError with a formatted context message.
func FromErrorf(code int, cause error, format string, args ...any) Error {
	return FromError(code, cause, fmt.Sprintf(format, args...))
}

// FromErrorWithLog is FromError that also writes the message to log at Error level.
func FromErrorWithLog(code int, cause error, wrap string, log yalogger.Logger) Error {
	err := FromError(code, cause, wrap)

	if log != nil {
		log.Error(err.(*yaError).traceback) //nolint:forcetypeassert
	}

	return err
}

// FromString creates an Error without a sentinel cause.
func FromString(code int, msg string) Error {
	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// FromStringWithLog is FromString that also writes the message to log at Error level.
func FromStringWithLog(code int, msg string, log yalogger.Logger) Error {
	if log != nil {
		log.Error(msg)
	}

	return FromString(code, msg)
}

// Error returns the code and the traceback, e.g. "400 | parse int8 -> bad conversion".
func (e *yaError) Error() string {
	safetyCheck(&e)

	return fmt.Sprintf("%d%s%s", e.code, codeSeparate, e.traceback)
}

// Unwrap returns the cause the error was created from.
func (e *yaError) Unwrap() error {
	safetyCheck(&e)

	return e.cause
}

// UnwrapLastError returns the outermost context message.
func (e *yaError) UnwrapLastError() string {
	safetyCheck(&e)

	end := strings.Index(e.traceback, errorSeparate)
	if end == -1 {
		return e.traceback
	}

	return e.traceback[:end]
}

// Wrap prepends msg to the traceback.
// Call it each time the error is returned to a higher level of the call stack.
func (e *yaError) Wrap(msg string) Error {
	safetyCheck(&e)
	e.traceback = fmt.Sprintf("%s%s%s", msg, errorSeparate, e.traceback)

	return e
}

// Wrapf is Wrap with a formatted message.
func (e *yaError) Wrapf(format string, args ...any) Error {
	return e.Wrap(fmt.Sprintf(format, args...))
}

// WrapWithLog is Wrap that also writes msg to log at Error level.
func (e *yaError) WrapWithLog(msg string, log yalogger.Logger) Error {
	if log != nil {
		log.Error(msg)
	}

	return e.Wrap(msg)
}

// Code returns the code the error was created with.
func (e *yaError) Code() int {
	safetyCheck(&e)

	return e.code
}

// safetyCheck replaces a nil receiver with the teapot error so that methods
// called on a typed nil never dereference it.
func safetyCheck(err **yaError) {
	if *err == nil {
		*err = &yaError{
			code:      http.StatusTeapot,
			cause:     ErrTeapot,
			traceback: ErrTeapot.Error(),
		}
	}
}
