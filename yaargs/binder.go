package yaargs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
	"github.com/YaCodeDev/GoYaCliUtils/yalogger"
)

// Binder logs rejected input and drives re-prompting. It holds no state
// besides its logger and limit, so one Binder may serve many goroutines.
type Binder struct {
	log         yalogger.Logger
	maxAttempts int
}

// NewBinder returns a Binder that logs through log and lets Retry read at most
// maxAttempts lines. A nil log falls back to a default logger, a non-positive
// maxAttempts to DefaultMaxAttempts.
func NewBinder(log yalogger.Logger, maxAttempts int) *Binder {
	if log == nil {
		log = yalogger.NewBaseLogger(nil).NewLogger()
	}

	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Binder{
		log:         log,
		maxAttempts: maxAttempts,
	}
}

// Report logs err when it is user-correctable input and reports whether it
// was: a *Rejection, a malformed line or a wrong argument count.
func (b *Binder) Report(err error) bool {
	var rejection *Rejection

	switch {
	case err == nil:
		return false
	case errors.As(err, &rejection):
		b.log.
			WithField(KeyTokenIndex, rejection.Index).
			WithField(KeyToken, rejection.Token).
			Debugf("%s: %s", rejection.Error(), rejection.Reason())

		return true
	case errors.Is(err, ErrMalformedLine),
		errors.Is(err, ErrArgumentCount),
		errors.Is(err, ErrMissingArgument):
		b.log.Debugf("Input rejected: %v", err)

		return true
	}

	return false
}

// Retry reads lines from read, splits each with SplitLine and hands the
// tokens to bind until bind succeeds. Input that Report accepts as
// user-correctable costs one attempt; any other error from read or bind is
// returned as is. After the last attempt the final rejection is returned
// wrapped in ErrRetriesExhausted.
//
// Example usage:
//
//	var n int16
//
//	err := binder.Retry(readLine, func(args []string) error {
//		var err error
//		n, err = yaargs.Bind1[int16](args)
//
//		return err
//	})
func (b *Binder) Retry(read func() (string, error), bind func(args []string) error) error {
	var last error

	for attempt := 1; attempt <= b.maxAttempts; attempt++ {
		line, err := read()
		if err != nil {
			return err
		}

		args, splitErr := SplitLine(line)
		if splitErr != nil {
			last = splitErr
		} else {
			last = bind(args)
		}

		if last == nil {
			return nil
		}

		if !b.Report(last) {
			return last
		}

		b.log.WithField(KeyAttempt, attempt).Tracef("Attempt %d of %d rejected", attempt, b.maxAttempts)
	}

	return yaerrors.FromError(
		http.StatusBadRequest,
		ErrRetriesExhausted,
		fmt.Sprintf("after %d attempts, last: %v", b.maxAttempts, last),
	)
}
