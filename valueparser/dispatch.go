package valueparser

import (
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

type parseFunc func(token string) (any, yaerrors.Error)

// parsers holds one routine per kind. TestParsersCoverEveryKind keeps it in
// step with the Kind enum.
var parsers = [kindCount]parseFunc{
	KindUint8:   erase(ParseUnsigned[uint8]),
	KindUint16:  erase(ParseUnsigned[uint16]),
	KindUint32:  erase(ParseUnsigned[uint32]),
	KindUint64:  erase(ParseUnsigned[uint64]),
	KindInt8:    erase(ParseSigned[int8]),
	KindInt16:   erase(ParseSigned[int16]),
	KindInt32:   erase(ParseSigned[int32]),
	KindInt64:   erase(ParseSigned[int64]),
	KindBool:    erase(ParseBool),
	KindChar:    erase(ParseChar),
	KindFloat32: erase(ParseFloat[float32]),
	KindFloat64: erase(ParseFloat[float64]),
	KindFloat80: erase(ParseFloat80),
	KindString:  erase(ParseString),
	KindNull:    erase(ParseNull),
}

func erase[T any](parse func(string) (T, yaerrors.Error)) parseFunc {
	return func(token string) (any, yaerrors.Error) {
		value, err := parse(token)
		if err != nil {
			return nil, err
		}

		return value, nil
	}
}

// ParseKind converts token to the Go value of kind, chosen at run time.
// The dynamic type of the result is the one listed for the kind: uint8 for
// KindUint8, Char for KindChar, *big.Float for KindFloat80 and so on.
//
// Example usage:
//
//	value, err := ParseKind(KindInt16, "-300")
//	if err != nil {
//		// Handle error
//	}
//
//	n := value.(int16)
func ParseKind(kind Kind, token string) (any, yaerrors.Error) {
	if kind == KindInvalid || kind >= kindCount || parsers[kind] == nil {
		return nil, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnknownKind,
			fmt.Sprintf("parse kind: %d", kind),
		)
	}

	return parsers[kind](token)
}
