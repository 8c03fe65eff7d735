package valueparser

import (
	"math/big"
	"net/http"
	"reflect"
	"strings"

	"github.com/samber/lo"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// Kind is the closed set of target kinds a token can be converted to.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindBool
	KindChar
	KindFloat32
	KindFloat64
	KindFloat80
	KindString
	KindNull
	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid: "invalid",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindBool:    "bool",
	KindChar:    "char",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindFloat80: "float80",
	KindString:  "string",
	KindNull:    "null",
}

var kindAliases = map[string]Kind{
	"rune":       KindChar,
	"float":      KindFloat32,
	"double":     KindFloat64,
	"longdouble": KindFloat80,
	"nil":        KindNull,
}

var (
	charType     = reflect.TypeFor[Char]()
	nullType     = reflect.TypeFor[Null]()
	float80Type  = reflect.TypeFor[*big.Float]()
	unsignedKind = map[int]Kind{8: KindUint8, 16: KindUint16, 32: KindUint32, 64: KindUint64}
	signedKind   = map[int]Kind{8: KindInt8, 16: KindInt16, 32: KindInt32, 64: KindInt64}
)

func (k Kind) String() string {
	if k >= kindCount {
		return "invalid"
	}

	return kindNames[k]
}

// UnmarshalText sets the kind from its name or one of its aliases, case-insensitively.
func (k *Kind) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))

	for kind := KindInvalid + 1; kind < kindCount; kind++ {
		if kindNames[kind] == name {
			*k = kind

			return nil
		}
	}

	if kind, ok := kindAliases[name]; ok {
		*k = kind

		return nil
	}

	return yaerrors.FromError(
		http.StatusBadRequest,
		ErrUnknownKind,
		"kind: "+string(text),
	)
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)

	for kind := KindInvalid + 1; kind < kindCount; kind++ {
		kinds = append(kinds, kind)
	}

	return kinds
}

// KindNames returns the canonical name of every valid kind.
func KindNames() []string {
	return lo.Map(Kinds(), func(kind Kind, _ int) string {
		return kind.String()
	})
}

// KindOf maps a Go type onto its kind. Named types map onto the kind of their
// underlying type; int, uint and uintptr map by their bit size.
// It does not consider text capabilities, see ParseReflect for that.
func KindOf(typ reflect.Type) (Kind, bool) {
	if typ == nil {
		return KindInvalid, false
	}

	switch typ {
	case charType:
		return KindChar, true
	case nullType:
		return KindNull, true
	case float80Type:
		return KindFloat80, true
	}

	//nolint:exhaustive // Only scalar kinds have a specialised routine, the rest use the fallback
	switch typ.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedKind[typ.Bits()], true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedKind[typ.Bits()], true
	case reflect.Bool:
		return KindBool, true
	case reflect.Float32:
		return KindFloat32, true
	case reflect.Float64:
		return KindFloat64, true
	case reflect.String:
		return KindString, true
	}

	return KindInvalid, false
}
