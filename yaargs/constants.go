package yaargs

// DefaultMaxAttempts is the number of lines Binder.Retry reads when the
// binder was created without a limit.
const DefaultMaxAttempts = 3

const (
	KeyTokenIndex = "token_index"
	KeyToken      = "token"
	KeyAttempt    = "attempt"
)
