package yaargs

import "errors"

var (
	ErrMalformedLine    = errors.New("malformed argument line")
	ErrArgumentCount    = errors.New("wrong number of arguments")
	ErrMissingArgument  = errors.New("missing argument")
	ErrRetriesExhausted = errors.New("retries exhausted")
)
