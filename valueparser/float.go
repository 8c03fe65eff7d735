package valueparser

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// ParseFloat converts a token into a float32 or float64.
//
// The token must be a complete floating point literal: no whitespace anywhere,
// no trailing characters, no digit separators. Decimal and hexadecimal
// ("0x1.8p1", "0xA") literals are accepted, as are "inf", "infinity" and a
// signed or unsigned "nan" in any case. A finite literal that overflows T or rounds a non-zero mantissa to zero
// is out of range.
//
// Example usage:
//
//	f, err := ParseFloat[float64]("3.14")
func ParseFloat[T constraints.Float](token string) (T, yaerrors.Error) {
	var zero T

	bitSize := reflect.TypeFor[T]().Bits()
	target := fmt.Sprintf("%T", zero)

	literal, err := floatLiteral(target, token)
	if err != nil {
		return zero, err
	}

	value, parseErr := strconv.ParseFloat(strconvLiteral(literal), bitSize)
	if parseErr != nil {
		if errors.Is(parseErr, strconv.ErrRange) && !isSpecialFloat(literal) {
			return zero, badConversion(target, "%q is out of range", token)
		}

		return zero, badConversion(target, "%q is not a number", token)
	}

	if value == 0 && !mantissaIsZero(literal) {
		return zero, badConversion(target, "%q is out of range", token)
	}

	return T(value), nil
}

// ParseFloat80 converts a token into an x87 extended precision value: a
// big.Float with a 64-bit mantissa, bounded to the extended exponent range.
// The accepted syntax is the one of ParseFloat. NaN has no big.Float
// representation and is rejected.
func ParseFloat80(token string) (*big.Float, yaerrors.Error) {
	const target = "float80"

	literal, err := floatLiteral(target, token)
	if err != nil {
		return nil, err
	}

	value := new(big.Float).SetPrec(Float80Precision)

	unsigned := strings.TrimLeft(literal, "+-")

	switch {
	case hasFoldPrefix(unsigned, "inf"):
		return value.SetInf(literal[0] == '-'), nil
	case hasFoldPrefix(unsigned, "nan"):
		return nil, badConversion(target, "%q: NaN is not representable", token)
	}

	if _, _, parseErr := value.Parse(literal, 0); parseErr != nil {
		return nil, badConversion(target, "%q is not a number", token)
	}

	if value.Sign() != 0 {
		exp := value.MantExp(nil)
		if exp > float80MaxExp || exp < float80MinExp {
			return nil, badConversion(target, "%q is out of range", token)
		}
	}

	return value, nil
}

// floatLiteral rejects whitespace and returns token once the whole of it is
// known to be a single floating point literal.
func floatLiteral(target, token string) (string, yaerrors.Error) {
	if token == "" {
		return "", badConversion(target, "empty token")
	}

	if i := strings.IndexFunc(token, unicode.IsSpace); i >= 0 {
		return "", badConversion(target, "whitespace at offset %d in %q", i, token)
	}

	consumed := floatPrefixLen(token)
	if consumed == 0 {
		return "", badConversion(target, "%q is not a number", token)
	}

	if consumed < len(token) {
		return "", badConversion(
			target,
			"trailing characters at offset %d in %q",
			consumed,
			token,
		)
	}

	return token, nil
}

// strconvLiteral rewrites a strtod literal into the form strconv.ParseFloat
// reads: a hexadecimal mantissa gets the binary exponent strconv requires and
// NaN loses its sign.
func strconvLiteral(literal string) string {
	unsigned := strings.TrimLeft(literal, "+-")

	switch {
	case hasFoldPrefix(unsigned, "nan"):
		return unsigned
	case isHexLiteral(unsigned) && !strings.ContainsAny(unsigned, "pP"):
		return literal + "p0"
	}

	return literal
}

// floatPrefixLen reports how many leading bytes of s form a floating point
// literal in the grammar of C's strtod. Zero means s does not start with one.
func floatPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	rest := s[i:]

	switch {
	case hasFoldPrefix(rest, "infinity"):
		return i + len("infinity")
	case hasFoldPrefix(rest, "inf"):
		return i + len("inf")
	case hasFoldPrefix(rest, "nan"):
		return i + len("nan")
	}

	if isHexLiteral(rest) {
		n := mantissaLen(rest[2:], isHexDigit)
		if n == 0 {
			// strtod reads "0x" with no hex digits as the number 0.
			return i + 1
		}

		n += 2

		return i + n + exponentLen(rest[n:], 'p', 'P')
	}

	n := mantissaLen(rest, isDecimalDigit)
	if n == 0 {
		return 0
	}

	return i + n + exponentLen(rest[n:], 'e', 'E')
}

// mantissaLen measures digits with an optional '.' and fraction.
// At least one digit must appear on either side of the point.
func mantissaLen(s string, isDigit func(byte) bool) int {
	i := 0
	digits := 0

	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			digits++
		}

		if digits > 0 {
			i = j
		}
	}

	if digits == 0 {
		return 0
	}

	return i
}

// exponentLen measures an exponent part introduced by lower or upper.
// An exponent marker without digits is not part of the literal.
func exponentLen(s string, lower, upper byte) int {
	if s == "" || (s[0] != lower && s[0] != upper) {
		return 0
	}

	i := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	start := i
	for i < len(s) && isDecimalDigit(s[i]) {
		i++
	}

	if i == start {
		return 0
	}

	return i
}

// mantissaIsZero reports whether every mantissa digit of a literal is zero.
func mantissaIsZero(literal string) bool {
	s := strings.TrimLeft(literal, "+-")

	if hasFoldPrefix(s, "inf") || hasFoldPrefix(s, "nan") {
		return false
	}

	hex := isHexLiteral(s)
	if hex {
		s = s[2:]
	}

	for i := range len(s) {
		c := s[i]

		switch {
		case c == '.' || c == '0':
			continue
		case hex && (c == 'p' || c == 'P'):
			return true
		case !hex && (c == 'e' || c == 'E'):
			return true
		}

		return false
	}

	return true
}

func isSpecialFloat(literal string) bool {
	s := strings.TrimLeft(literal, "+-")

	return hasFoldPrefix(s, "inf") || hasFoldPrefix(s, "nan")
}

func isHexLiteral(s string) bool {
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
