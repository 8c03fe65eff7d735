package config

import (
	"fmt"
	"net/http"
	"os"
	"reflect"

	"github.com/YaCodeDev/GoYaCliUtils/valueparser"
	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
	"github.com/YaCodeDev/GoYaCliUtils/yalogger"
)

// LoadConfigStructFromEnv loads environment variables into a struct.
// It uses the field names of the struct as keys to look up values in the environment.
// The keys are converted to SCREAMING_SNAKE_CASE.
//
// This is a wrapper around LoadConfigStructFromEnvHandlingError that exits on error.
//
// Example usage:
//
//	type Config struct {
//		LogLevel yalogger.Level `default:"info"`
//		Kinds    []valueparser.Kind
//	}
//
//	var cfg Config
//
//	config.LoadConfigStructFromEnv(&cfg, nil)
func LoadConfigStructFromEnv[T any](instance *T, log yalogger.Logger) {
	safetyCheck(&log)

	err := LoadConfigStructFromEnvHandlingError(instance, log)
	if err != nil {
		log.Fatalf("Failed to load config struct from env: %v", err)
	}
}

// LoadConfigStructFromEnvHandlingError loads environment variables into a struct.
// It uses the field names of the struct as keys to look up values in the environment.
// The keys are converted to SCREAMING_SNAKE_CASE, nested structs prefix the keys
// of their fields with their own key.
//
// Values are looked up in the process environment first, then in the .env
// file of the working directory, which never overrides a variable that is
// already set. A field that has no variable keeps its current value when it
// is not zero, otherwise the value of its `default` tag is used. A field with
// neither is required and yields ErrValueIsRequired.
//
// Every value goes through valueparser with the strictness of ParseValue:
// scalars by kind, types with a text capability through it, slices through
// ParseArray and maps through ParseMap. A value that does not parse is an error.
//
// Example usage:
//
//	type SubConfig struct {
//		Retries uint8 `default:"3"`
//	}
//
//	type Config struct {
//		Sub      SubConfig
//		LogLevel yalogger.Level    `default:"info"`
//		Weights  map[string]float64 `default:"a:1.5,b:2"`
//	}
//
//	var cfg Config
//
//	if err := config.LoadConfigStructFromEnvHandlingError(&cfg, nil); err != nil {
//		// handle error
//	}
func LoadConfigStructFromEnvHandlingError[T any](instance *T, log yalogger.Logger) yaerrors.Error {
	safetyCheck(&log)

	err := loadDotEnv()
	if err != nil {
		log.Warnf("Error loading .env file: %v", err)
	}

	if instance == nil {
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			ErrConfigStructMustBeStruct,
			fmt.Sprintf("config loader, got nil %T", instance),
			log,
		)
	}

	value := reflect.ValueOf(instance).Elem()
	if value.Kind() != reflect.Struct {
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			ErrConfigStructMustBeStruct,
			fmt.Sprintf(
				"config loader, got %T",
				instance,
			),
			log,
		)
	}

	return loadConfigStructFromEnv(value, "", log)
}

// Internal function to load config struct from environment variables.
// It recursively processes each field of the struct.
// Does the actual work of LoadConfigStructFromEnv.
func loadConfigStructFromEnv(
	structValue reflect.Value,
	keyPath string,
	log yalogger.Logger,
) yaerrors.Error {
	structType := structValue.Type()

	for i := range structValue.NumField() {
		field := structType.Field(i)
		fieldVal := structValue.Field(i)

		if !fieldVal.CanSet() {
			log.Warnf("Field %s cannot be set", field.Name)

			continue
		}

		envKey := toScreamingSnakeCase(field.Name)

		if keyPath != "" {
			envKey = fmt.Sprintf(
				"%s_%s",
				keyPath,
				envKey,
			)
		}

		//nolint:exhaustive // Every other kind is handed to valueparser
		switch field.Type.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
			log.Warnf("Unsupported field type for field %s", field.Name)

			continue
		case reflect.Struct:
			if !valueparser.HasTextCapability(field.Type) {
				if err := loadConfigStructFromEnv(fieldVal, envKey, log); err != nil {
					return err.WrapWithLog(
						"failed to load struct field "+field.Name,
						log,
					)
				}

				continue
			}
		}

		if err := loadField(field, fieldVal, envKey, log); err != nil {
			return err
		}
	}

	return nil
}

// loadField sets a single non-struct field from envKey, its current value or
// its default tag, in that order.
func loadField(
	field reflect.StructField,
	fieldVal reflect.Value,
	envKey string,
	log yalogger.Logger,
) yaerrors.Error {
	defaultValStr, hasDefault := field.Tag.Lookup(DefaultTagName)

	raw, fromEnv := os.LookupEnv(envKey)

	var source string

	switch {
	case fromEnv:
		source = raw
	case !fieldVal.IsZero():
		return nil
	case hasDefault && defaultValStr == "":
		return nil
	case hasDefault:
		source = defaultValStr
	default:
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			ErrValueIsRequired,
			fmt.Sprintf("config loader: %s for field %s", envKey, field.Name),
			log,
		)
	}

	parsed, err := parseField(source, field.Type)
	if err != nil {
		if fromEnv {
			return err.WrapWithLog(
				fmt.Sprintf("config loader: environment variable %s", envKey),
				log,
			)
		}

		return err.WrapWithLog(
			fmt.Sprintf("config loader: field %s default", field.Name),
			log,
		)
	}

	fieldVal.Set(parsed)

	if fromEnv {
		log.Debugf("Field %s loaded from %s", field.Name, envKey)
	}

	return nil
}

func parseField(text string, typ reflect.Type) (reflect.Value, yaerrors.Error) {
	if valueparser.HasTextCapability(typ) {
		return valueparser.ParseReflect(text, typ)
	}

	//nolint:exhaustive // Only containers need splitting
	switch typ.Kind() {
	case reflect.Slice:
		return valueparser.ParseArrayReflect(text, nil, typ)
	case reflect.Map:
		return valueparser.ParseMapReflect(text, nil, nil, typ)
	}

	return valueparser.ParseReflect(text, typ)
}
