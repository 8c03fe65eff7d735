package valueparser

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// ParseUnsigned converts a decimal token into an unsigned integer of type T.
// One leading '+' is accepted; everything after it must be ASCII digits and the
// value must fit in T.
//
// Example usage:
//
//	port, err := ParseUnsigned[uint16]("8080")
//	if err != nil {
//		// errors.Is(err, ErrBadConversion)
//	}
func ParseUnsigned[T constraints.Unsigned](token string) (T, yaerrors.Error) {
	var zero T

	target := fmt.Sprintf("%T", zero)

	digits, offset := stripPlus(token)

	value, pos, failure := parseDigits(digits, uint64(^zero))
	if failure != digitsOK {
		return zero, digitsError(target, token, offset, pos, failure)
	}

	return T(value), nil
}

// stripPlus drops one leading '+' and reports how many bytes were dropped.
func stripPlus(token string) (string, int) {
	if token != "" && token[0] == '+' {
		return token[1:], 1
	}

	return token, 0
}
