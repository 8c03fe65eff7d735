package config

import (
	"strings"

	"github.com/YaCodeDev/GoYaCliUtils/yalogger"
)

// safetyCheck ensures that the logger is not nil before performing any operations.
// If the logger is nil, it initializes a new logger and logs a warning message.
func safetyCheck(log *yalogger.Logger) {
	if log == nil {
		return
	}

	if *log == nil {
		*log = yalogger.NewBaseLogger(nil).NewLogger()

		(*log).Warn("Logger is nil, using default logger")
	}
}

// toScreamingSnakeCase converts a string to SCREAMING_SNAKE_CASE.
// It replaces camelCase and PascalCase with underscores and converts to uppercase.
// For example, "myVariableName" becomes "MY_VARIABLE_NAME" and "MyVariableName" becomes "MY_VARIABLE_NAME".
// It also handles acronyms and abbreviations, ensuring they are treated as separate words.
// For example, "HTTPResponse" becomes "HTTP_RESPONSE" and "XMLParser" becomes "XML_PARSER".
func toScreamingSnakeCase(s string) string {
	s = matchFirstCap.ReplaceAllString(s, "${1}_${2}")
	s = matchAllCap.ReplaceAllString(s, "${1}_${2}")

	return strings.ToUpper(s)
}
