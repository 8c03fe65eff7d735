package valueparser

import (
	"net/http"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

type digitsFailure uint8

const (
	digitsOK digitsFailure = iota
	digitsEmpty
	digitsSyntax
	digitsRange
)

// parseDigits accumulates an unsigned decimal number made of ASCII digits only.
//
// Every step checks result > (limit-digit)/10 before computing result*10+digit,
// so the accumulator never leaves [0, limit] and cannot wrap. On failure pos is
// the index of the offending byte.
func parseDigits(s string, limit uint64) (value uint64, pos int, failure digitsFailure) {
	if s == "" {
		return 0, 0, digitsEmpty
	}

	for i := range len(s) {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, i, digitsSyntax
		}

		digit := uint64(c - '0')
		if value > (limit-digit)/10 {
			return 0, i, digitsRange
		}

		value = value*10 + digit
	}

	return value, len(s), digitsOK
}

// digitsError turns a parseDigits failure into a conversion error.
// offset is where digits start inside token, so the reported position points
// into the token the caller received.
func digitsError(target, token string, offset, pos int, failure digitsFailure) yaerrors.Error {
	switch failure {
	case digitsEmpty:
		return badConversion(target, "no digits in %q", token)
	case digitsSyntax:
		return badConversion(
			target,
			"invalid character %q at offset %d in %q",
			token[offset+pos],
			offset+pos,
			token,
		)
	case digitsRange:
		return badConversion(target, "%q is out of range", token)
	case digitsOK:
	}

	return badConversion(target, "unexpected failure for %q", token)
}

// badConversion reports that token could not be interpreted as target.
func badConversion(target, format string, args ...any) yaerrors.Error {
	return yaerrors.FromErrorf(
		http.StatusBadRequest,
		ErrBadConversion,
		"parse "+target+": "+format,
		args...,
	)
}
