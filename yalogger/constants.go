package yalogger

// Level is the minimum severity a logger writes.
// The order matches logrus so a Level converts directly to logrus.Level.
type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// BaseLoggerType selects the backend behind a BaseLogger.
type BaseLoggerType uint8

const (
	Logrus BaseLoggerType = iota
)

const (
	KeyRequestID = "request_id"
	KeyUserID    = "user_id"
)

const DefaultTimestampFormat = "2006-01-02 15:04:05"
