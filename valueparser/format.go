package valueparser

import (
	"encoding"
	"fmt"
	"math/big"
	"net/http"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// Format renders value in the canonical textual form of kind. Parsing the
// result with the same kind yields value again.
//
// Integers are rendered in decimal, booleans as "true"/"false", characters as
// themselves, floats in the shortest form that round-trips at their precision,
// strings unchanged and Null as the empty string.
func Format(kind Kind, value any) (string, yaerrors.Error) {
	if value == nil {
		return "", yaerrors.FromError(
			http.StatusInternalServerError,
			ErrValueKindMismatch,
			fmt.Sprintf("format %s: got nil", kind),
		)
	}

	rv := reflect.ValueOf(value)

	if actual, ok := KindOf(rv.Type()); !ok || actual != kind {
		return "", yaerrors.FromError(
			http.StatusInternalServerError,
			ErrValueKindMismatch,
			fmt.Sprintf("format %s: got %T", kind, value),
		)
	}

	switch kind {
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case KindBool:
		return strconv.FormatBool(rv.Bool()), nil
	case KindChar:
		r := rune(rv.Int())
		if !utf8.ValidRune(r) {
			return "", yaerrors.FromError(
				http.StatusInternalServerError,
				ErrValueKindMismatch,
				fmt.Sprintf("format char: %U is not a valid code point", r),
			)
		}

		return string(r), nil
	case KindFloat32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case KindFloat64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case KindFloat80:
		f, _ := value.(*big.Float)
		if f == nil {
			return "", yaerrors.FromError(
				http.StatusInternalServerError,
				ErrValueKindMismatch,
				"format float80: nil *big.Float",
			)
		}

		return f.Text('g', -1), nil
	case KindString:
		return rv.String(), nil
	case KindNull:
		return "", nil
	case KindInvalid, kindCount:
	}

	return "", yaerrors.FromError(
		http.StatusInternalServerError,
		ErrUnknownKind,
		fmt.Sprintf("format: %d", kind),
	)
}

// FormatValue renders value in the canonical form of its type: MarshalText for
// encoding.TextMarshaler implementations, String for types that decode
// themselves from text and are fmt.Stringer, the form of its kind for scalar
// types and fmt's default formatting for anything else.
func FormatValue[T any](value T) (string, yaerrors.Error) {
	typ := reflect.TypeFor[T]()

	if typ == float80Type {
		return Format(KindFloat80, value)
	}

	if marshaler, ok := any(value).(encoding.TextMarshaler); ok {
		text, err := marshaler.MarshalText()
		if err != nil {
			return "", yaerrors.FromError(
				http.StatusInternalServerError,
				err,
				fmt.Sprintf("format %s", typ),
			)
		}

		return string(text), nil
	}

	if stringer, ok := any(value).(fmt.Stringer); ok && HasTextCapability(typ) {
		return stringer.String(), nil
	}

	if kind, ok := KindOf(typ); ok {
		return Format(kind, value)
	}

	return fmt.Sprint(value), nil
}
