package valueparser

import (
	"errors"
)

// ErrBadConversion is the single conversion failure: the token could not be
// interpreted as a value of the requested type. Every parse routine of this
// package reports its failures with this cause.
var ErrBadConversion = errors.New(
	"bad conversion: source string value could not be interpreted as target",
)

var (
	ErrUnknownKind       = errors.New("unknown kind")
	ErrValueKindMismatch = errors.New("value does not match kind")
	ErrUnconvertibleType = errors.New("unconvertible type")
	ErrInvalidEntry      = errors.New("invalid entry")
)
