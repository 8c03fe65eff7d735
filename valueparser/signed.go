package valueparser

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// ParseSigned converts a decimal token into a signed integer of type T.
//
// The magnitude is accumulated in the range of T's unsigned counterpart and
// bounds are checked before narrowing: a negative token may reach -min(T),
// which is one more than max(T), anything else may reach max(T).
//
// Example usage:
//
//	v, err := ParseSigned[int8]("-128") // v == math.MinInt8
func ParseSigned[T constraints.Signed](token string) (T, yaerrors.Error) {
	var zero T

	target := fmt.Sprintf("%T", zero)
	width := reflect.TypeFor[T]().Bits()

	unsignedMax := uint64(math.MaxUint64) >> (64 - width)
	positiveMax := unsignedMax >> 1

	if token != "" && token[0] == '-' {
		magnitude, pos, failure := parseDigits(token[1:], unsignedMax)
		if failure != digitsOK {
			return zero, digitsError(target, token, 1, pos, failure)
		}

		if magnitude > positiveMax+1 {
			return zero, badConversion(target, "%q is below the minimum", token)
		}

		if magnitude == 0 {
			return zero, nil
		}

		// -(m-1)-1 stays inside T even for m == -min(T).
		return -T(magnitude-1) - 1, nil
	}

	digits, offset := stripPlus(token)

	magnitude, pos, failure := parseDigits(digits, unsignedMax)
	if failure != digitsOK {
		return zero, digitsError(target, token, offset, pos, failure)
	}

	if magnitude > positiveMax {
		return zero, badConversion(target, "%q is above the maximum", token)
	}

	return T(magnitude), nil
}
