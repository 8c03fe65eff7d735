package valueparser

import (
	"net/http"
	"reflect"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// ConvertValue converts a reflect.Value to the specified target type.
// An invalid value yields the zero value of the target type.
// A value that cannot be converted yields ErrUnconvertibleType.
func ConvertValue(val reflect.Value, targetType reflect.Type) (reflect.Value, yaerrors.Error) {
	if !val.IsValid() {
		return reflect.Zero(targetType), nil
	}

	if val.Type() == targetType {
		return val, nil
	}

	if val.Type().ConvertibleTo(targetType) {
		return val.Convert(targetType), nil
	}

	return reflect.Value{}, yaerrors.FromError(
		http.StatusInternalServerError,
		ErrUnconvertibleType,
		"convert value: "+val.Type().String()+" to "+targetType.String(),
	)
}
