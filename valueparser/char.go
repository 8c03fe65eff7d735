package valueparser

import (
	"unicode/utf8"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// ParseChar accepts a token made of exactly one valid UTF-8 encoded character.
func ParseChar(token string) (Char, yaerrors.Error) {
	if token == "" {
		return 0, badConversion("char", "empty token")
	}

	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError && size == 1 {
		return 0, badConversion("char", "invalid UTF-8 in %q", token)
	}

	if size != len(token) {
		return 0, badConversion(
			"char",
			"expected exactly one character, got %d in %q",
			utf8.RuneCountInString(token),
			token,
		)
	}

	return Char(r), nil
}

// ParseByte accepts a token made of exactly one byte.
func ParseByte(token string) (byte, yaerrors.Error) {
	if len(token) != 1 {
		return 0, badConversion("byte", "expected exactly one byte, got %d", len(token))
	}

	return token[0], nil
}
