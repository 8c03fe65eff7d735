package valueparser

import "fmt"

const (
	DefaultEntrySeparator = ","
	DefaultKVSeparator    = ":"
	MapPartsCount         = 2
)

// Float80Precision is the mantissa size, in bits, of the x87 extended format
// that Float80 values are rounded to.
const Float80Precision = 64

// Exponent range of the x87 extended format, expressed the way big.Float.MantExp
// reports exponents (x = mant * 2^exp with 0.5 <= |mant| < 1).
const (
	float80MaxExp = 16384
	float80MinExp = -16444
)

// Char is a single character. It is a distinct type because rune is an
// alias of int32 and would otherwise be parsed as a number.
type Char rune

func (c Char) String() string {
	return string(rune(c))
}

// Null is the "no value" sentinel. Parsing any token as Null succeeds.
type Null struct{}

func (Null) String() string {
	return ""
}

// Unmarshalable is the explicit text capability a user-defined type implements
// to be accepted by Fallback.
//
// Example usage:
//
//	type Color uint8
//
//	func (c *Color) Unmarshal(data string) error {
//		switch data {
//		case "red":
//			*c = 1
//		case "green":
//			*c = 2
//		default:
//			return fmt.Errorf("unknown color: %s", data)
//		}
//
//		return nil
//	}
type Unmarshalable interface {
	Unmarshal(data string) error
}

var _ fmt.Stringer = Char(0)
