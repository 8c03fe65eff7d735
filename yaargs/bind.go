package yaargs

import (
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaCliUtils/valueparser"
	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// Bind converts args[index] into T with valueparser.ParseValue.
// A token that does not convert yields a *Rejection; an index outside args
// yields ErrMissingArgument.
//
// Example usage:
//
//	count, err := Bind[uint8](args, 1)
//	if rejection := new(Rejection); errors.As(err, &rejection) {
//		fmt.Println(rejection)
//	}
func Bind[T any](args []string, index int) (T, error) {
	var zero T

	if index < 0 || index >= len(args) {
		return zero, yaerrors.FromError(
			http.StatusBadRequest,
			ErrMissingArgument,
			fmt.Sprintf("bind: argument %d of %d", index+1, len(args)),
		)
	}

	value, err := valueparser.ParseValue[T](args[index])
	if err != nil {
		return zero, reject[T](index, args[index], err)
	}

	return value, nil
}

// BindRest converts every token from args[from] on into T.
// The first token that does not convert stops the binding.
func BindRest[T any](args []string, from int) ([]T, error) {
	if from < 0 || from > len(args) {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrMissingArgument,
			fmt.Sprintf("bind rest: start %d of %d", from+1, len(args)),
		)
	}

	result := make([]T, 0, len(args)-from)

	for i := from; i < len(args); i++ {
		value, err := Bind[T](args, i)
		if err != nil {
			return nil, err
		}

		result = append(result, value)
	}

	return result, nil
}

// Bind1 binds a list of exactly one token.
func Bind1[A any](args []string) (A, error) {
	var a A

	if err := expectCount(args, 1); err != nil {
		return a, err
	}

	return Bind[A](args, 0)
}

// Bind2 binds a list of exactly two tokens to two parameters.
//
// Example usage:
//
//	name, age, err := Bind2[string, uint8](args)
func Bind2[A, B any](args []string) (A, B, error) {
	var (
		a A
		b B
	)

	if err := expectCount(args, 2); err != nil { //nolint:mnd
		return a, b, err
	}

	a, err := Bind[A](args, 0)
	if err != nil {
		return a, b, err
	}

	b, err = Bind[B](args, 1)

	return a, b, err
}

// Bind3 binds a list of exactly three tokens to three parameters.
func Bind3[A, B, C any](args []string) (A, B, C, error) {
	var (
		a A
		b B
		c C
	)

	if err := expectCount(args, 3); err != nil { //nolint:mnd
		return a, b, c, err
	}

	a, err := Bind[A](args, 0)
	if err != nil {
		return a, b, c, err
	}

	b, err = Bind[B](args, 1)
	if err != nil {
		return a, b, c, err
	}

	c, err = Bind[C](args, 2) //nolint:mnd

	return a, b, c, err
}

func expectCount(args []string, want int) yaerrors.Error {
	if len(args) != want {
		return yaerrors.FromError(
			http.StatusBadRequest,
			ErrArgumentCount,
			fmt.Sprintf("expected %d arguments, got %d", want, len(args)),
		)
	}

	return nil
}
