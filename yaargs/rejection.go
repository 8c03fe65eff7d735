package yaargs

import (
	"fmt"
	"reflect"

	"github.com/YaCodeDev/GoYaCliUtils/valueparser"
	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// Rejection reports that one argument could not be bound to its parameter.
// Index is the position of the token in the argument list, counted from 0;
// the rendered message counts from 1.
//
// errors.Is(rejection, valueparser.ErrBadConversion) holds.
type Rejection struct {
	Index int
	Token string
	Type  string
	Err   yaerrors.Error
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("input rejected: argument %d %q is not a valid %s", r.Index+1, r.Token, r.Type)
}

func (r *Rejection) Unwrap() error {
	if r.Err == nil {
		return nil
	}

	return r.Err
}

// Reason returns why the token was rejected, without the code.
func (r *Rejection) Reason() string {
	if r.Err == nil {
		return ""
	}

	return r.Err.UnwrapLastError()
}

// typeName names a parameter type for users: kind names for the dedicated
// valueparser types, Go type names otherwise.
func typeName(typ reflect.Type) string {
	if kind, ok := valueparser.KindOf(typ); ok {
		switch kind {
		case valueparser.KindChar, valueparser.KindNull, valueparser.KindFloat80:
			return kind.String()
		default:
		}
	}

	return typ.String()
}

func reject[T any](index int, token string, err yaerrors.Error) *Rejection {
	return &Rejection{
		Index: index,
		Token: token,
		Type:  typeName(reflect.TypeFor[T]()),
		Err:   err,
	}
}
