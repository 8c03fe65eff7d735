package valueparser

import "github.com/YaCodeDev/GoYaCliUtils/yaerrors"

// ParseString returns the token unchanged. It never fails.
func ParseString(token string) (string, yaerrors.Error) {
	return token, nil
}

// ParseNull ignores the token and returns the Null sentinel. It never fails.
func ParseNull(string) (Null, yaerrors.Error) {
	return Null{}, nil
}
