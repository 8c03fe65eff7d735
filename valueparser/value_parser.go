package valueparser

import (
	"fmt"
	"reflect"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// ParseValue is a generic function that converts a token to the specified type T.
// It returns the converted value, or the zero value of T and an error wrapping
// ErrBadConversion when the token is not a complete, valid representation of T.
//
// Types that decode themselves from text (Unmarshalable, encoding.TextUnmarshaler)
// use that capability; otherwise the strict routine of T's kind is used; any
// other type goes through Fallback.
//
// Example usage:
//
//	var intValue int
//	intValue, err := ParseValue[int]("123")
//	if err != nil {
//		// Handle error
//	}
func ParseValue[T any](token string) (T, yaerrors.Error) {
	return ParseValueWithCustomType[T](token, reflect.TypeFor[T]())
}

// ParseValueWithCustomType converts a token using the rules of valueType and
// then converts the result to T.
// This function is useful when the textual form belongs to another type, such
// as a custom enum with an Unmarshal method stored in a plain integer.
//
// Example usage:
//
//	type YourCustomType uint64
//
//	func (s *YourCustomType) Unmarshal(data string) error {
//		switch data {
//		case "FIRST":
//			*s = 1
//		case "SECOND":
//			*s = 2
//		default:
//			return fmt.Errorf("unknown value: %s", data)
//		}
//
//		return nil
//	}
//
//	customValue, err := ParseValueWithCustomType[uint64]("FIRST", reflect.TypeOf(YourCustomType(0)))
func ParseValueWithCustomType[T any](
	token string,
	valueType reflect.Type,
) (T, yaerrors.Error) {
	var zero T

	value, err := ParseReflect(token, valueType)
	if err != nil {
		return zero, err
	}

	converted, err := ConvertValue(value, reflect.TypeFor[T]())
	if err != nil {
		return zero, err.Wrap("parse value")
	}

	result, ok := converted.Interface().(T)
	if !ok {
		return zero, badConversion(fmt.Sprintf("%T", zero), "got %s", converted.Type())
	}

	return result, nil
}

// ParseReflect converts a token into a reflect.Value of exactly typ.
// It is the run-time counterpart of ParseValue for callers that only hold a
// reflect.Type, such as struct loaders.
func ParseReflect(token string, typ reflect.Type) (reflect.Value, yaerrors.Error) {
	if typ == nil {
		return reflect.Value{}, badConversion("<nil>", "no target type")
	}

	kind, ok := KindOf(typ)

	if kind != KindFloat80 && HasTextCapability(typ) {
		return fallback(token, typ)
	}

	if !ok {
		return fallback(token, typ)
	}

	value, err := ParseKind(kind, token)
	if err != nil {
		return reflect.Value{}, err
	}

	return ConvertValue(reflect.ValueOf(value), typ)
}
