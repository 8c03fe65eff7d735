package valueparser

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// ParseMap parses a string into a map[K]V using the provided separators.
// It splits the string by 'entrySeparator' and each entry by 'kvSeparator'.
// If 'entrySeparator' is nil, it defaults to DefaultEntrySeparator.
// If 'kvSeparator' is nil, it defaults to DefaultKVSeparator.
// If the string is empty, it returns an empty map.
//
// Example usage:
//
//	myMap, err := ParseMap[string, int]("key1:1,key2:1", nil, nil)
//	if err != nil {
//		// Handle error
//	}
func ParseMap[K comparable, V any](
	str string,
	entrySeparator *string,
	kvSeparator *string,
) (map[K]V, yaerrors.Error) {
	value, err := ParseMapReflect(str, entrySeparator, kvSeparator, reflect.TypeFor[map[K]V]())
	if err != nil {
		return nil, err
	}

	result, _ := value.Interface().(map[K]V)

	return result, nil
}

// ParseMapReflect is ParseMap for a map type known only at run time.
func ParseMapReflect(
	str string,
	entrySeparator *string,
	kvSeparator *string,
	mapType reflect.Type,
) (reflect.Value, yaerrors.Error) {
	if mapType == nil || mapType.Kind() != reflect.Map {
		return reflect.Value{}, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnconvertibleType,
			fmt.Sprintf("parse map: %v is not a map", mapType),
		)
	}

	result := reflect.MakeMap(mapType)

	if str == "" {
		return result, nil
	}

	kvSep := separatorOr(kvSeparator, DefaultKVSeparator)

	for _, item := range strings.Split(str, separatorOr(entrySeparator, DefaultEntrySeparator)) {
		parts := splitTrimmed(item, kvSep)
		if len(parts) != MapPartsCount {
			return reflect.Value{}, yaerrors.FromError(
				http.StatusBadRequest,
				ErrInvalidEntry,
				fmt.Sprintf("parse map: expected %d parts, got %d in %q", MapPartsCount, len(parts), item),
			)
		}

		k, err := ParseReflect(parts[0], mapType.Key())
		if err != nil {
			return reflect.Value{}, err.Wrapf("parse map: key %q", parts[0])
		}

		v, err := ParseReflect(parts[1], mapType.Elem())
		if err != nil {
			return reflect.Value{}, err.Wrapf("parse map: value %q", parts[1])
		}

		result.SetMapIndex(k, v)
	}

	return result, nil
}

func splitTrimmed(str, separator string) []string {
	parts := strings.Split(str, separator)

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

func separatorOr(separator *string, fallback string) string {
	if separator == nil {
		return fallback
	}

	return *separator
}
