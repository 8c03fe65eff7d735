package valueparser

import (
	"encoding"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

var (
	unmarshalableType   = reflect.TypeFor[Unmarshalable]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Fallback converts a token into a type that has no specialised routine.
//
// A type whose pointer implements Unmarshalable or encoding.TextUnmarshaler
// receives the token with surrounding whitespace trimmed. Any other type is
// read with fmt.Fscan, which covers fmt.Scanner implementations and the kinds
// fmt knows how to scan such as complex128, and only trailing whitespace may
// remain after the value.
//
// Example usage:
//
//	level, err := Fallback[yalogger.Level]("debug")
//	c, err := Fallback[complex128]("(1+2i)")
func Fallback[T any](token string) (T, yaerrors.Error) {
	var zero T

	value, err := fallback(token, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	result, ok := value.Interface().(T)
	if !ok {
		return zero, badConversion(fmt.Sprintf("%T", zero), "fallback produced %s", value.Type())
	}

	return result, nil
}

// HasTextCapability reports whether typ decodes itself from text, that is
// whether it or its pointer implements Unmarshalable or encoding.TextUnmarshaler.
func HasTextCapability(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		return typ.Implements(unmarshalableType) || typ.Implements(textUnmarshalerType)
	}

	ptr := reflect.PointerTo(typ)

	return ptr.Implements(unmarshalableType) || ptr.Implements(textUnmarshalerType)
}

// fallback returns a reflect.Value of exactly typ decoded from token.
func fallback(token string, typ reflect.Type) (reflect.Value, yaerrors.Error) {
	target := typ.String()

	holder := reflect.New(typ)
	receiver := holder.Interface()

	if typ.Kind() == reflect.Pointer {
		holder.Elem().Set(reflect.New(typ.Elem()))
		receiver = holder.Elem().Interface()
	}

	switch capability := receiver.(type) {
	case Unmarshalable:
		if err := capability.Unmarshal(strings.TrimSpace(token)); err != nil {
			return reflect.Value{}, badConversion(target, "%q: %v", token, err)
		}

		return holder.Elem(), nil
	case encoding.TextUnmarshaler:
		if err := capability.UnmarshalText([]byte(strings.TrimSpace(token))); err != nil {
			return reflect.Value{}, badConversion(target, "%q: %v", token, err)
		}

		return holder.Elem(), nil
	}

	return scanStream(token, holder, receiver, target)
}

// scanStream writes the token into a reader, extracts one value from it and
// requires the reader to hold nothing but whitespace afterwards.
func scanStream(
	token string,
	holder reflect.Value,
	receiver any,
	target string,
) (reflect.Value, yaerrors.Error) {
	reader := strings.NewReader(token)

	if _, err := fmt.Fscan(reader, receiver); err != nil {
		return reflect.Value{}, badConversion(target, "%q: %v", token, err)
	}

	rest, err := io.ReadAll(reader)
	if err != nil {
		return reflect.Value{}, badConversion(target, "%q: %v", token, err)
	}

	if i := strings.IndexFunc(string(rest), func(r rune) bool { return !unicode.IsSpace(r) }); i >= 0 {
		return reflect.Value{}, badConversion(
			target,
			"trailing characters at offset %d in %q",
			len(token)-len(rest)+i,
			token,
		)
	}

	return holder.Elem(), nil
}
