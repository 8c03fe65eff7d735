package valueparser

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// ParseArray splits a string by 'separator' and parses each part into T.
// Each part is trimmed of surrounding whitespace before it is converted, then
// converted as strictly as ParseValue does.
// If the string is empty, it returns an empty slice.
// If 'separator' is nil, it defaults to DefaultEntrySeparator.
//
// Example usage:
//
//	myArray, err := ParseArray[int8]("1, 2, 3", nil)
//	if err != nil {
//		// Handle error
//	}
func ParseArray[T any](
	str string,
	separator *string,
) ([]T, yaerrors.Error) {
	value, err := ParseArrayReflect(str, separator, reflect.TypeFor[[]T]())
	if err != nil {
		return nil, err
	}

	result, _ := value.Interface().([]T)

	return result, nil
}

// ParseArrayReflect is ParseArray for a slice type known only at run time.
func ParseArrayReflect(
	str string,
	separator *string,
	sliceType reflect.Type,
) (reflect.Value, yaerrors.Error) {
	if sliceType == nil || sliceType.Kind() != reflect.Slice {
		return reflect.Value{}, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnconvertibleType,
			fmt.Sprintf("parse array: %v is not a slice", sliceType),
		)
	}

	if str == "" {
		return reflect.MakeSlice(sliceType, 0, 0), nil
	}

	parts := splitTrimmed(str, separatorOr(separator, DefaultEntrySeparator))
	result := reflect.MakeSlice(sliceType, 0, len(parts))

	for i, part := range parts {
		elem, err := ParseReflect(part, sliceType.Elem())
		if err != nil {
			return reflect.Value{}, err.Wrapf("parse array: element %d", i)
		}

		result = reflect.Append(result, elem)
	}

	return result, nil
}
