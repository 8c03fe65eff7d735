package yaargs

import (
	"fmt"
	"net/http"

	"github.com/kballard/go-shellquote"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// SplitLine splits a line typed by a user into argument tokens with shell
// quoting rules, so `greet "John Smith" 3` yields three tokens and whitespace
// inside quotes stays part of its token.
//
// Example usage:
//
//	args, err := SplitLine(`int8 "-128"`)
//	if err != nil {
//		// errors.Is(err, ErrMalformedLine)
//	}
func SplitLine(line string) ([]string, yaerrors.Error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrMalformedLine,
			fmt.Sprintf("split %q: %v", line, err),
		)
	}

	return words, nil
}
