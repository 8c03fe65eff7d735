package valueparser

import (
	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// ParseBool accepts exactly "true" and "false", or an integer token equal to 1 or 0.
// Unlike strconv.ParseBool it rejects "t", "TRUE", "yes" and any other integer.
func ParseBool(token string) (bool, yaerrors.Error) {
	switch token {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	value, err := ParseSigned[int64](token)
	if err != nil {
		return false, badConversion("bool", "%q is neither a literal nor an integer", token)
	}

	switch value {
	case 1:
		return true, nil
	case 0:
		return false, nil
	}

	return false, badConversion("bool", "%q is neither 0 nor 1", token)
}
