package yalogger

import (
	"io"

	"github.com/google/uuid"
)

// Config defines the configuration options for the logger.
//
// BaseLoggerType: The type of logger to use (e.g., Logrus).
// Level: The minimum log level to output (e.g., Info).
// FullTimestamp: Whether to include the full timestamp in log messages.
// DisableTimestamp: Whether to disable timestamps in log messages.
// TimestampFormat: The format to use for timestamps in log messages.
// Output: Where log lines are written, os.Stderr when nil.
type Config struct {
	BaseLoggerType   BaseLoggerType
	Level            Level
	FullTimestamp    bool
	DisableTimestamp bool
	TimestampFormat  string
	Output           io.Writer
}

// BaseLogger is an interface for creating new Logger instances.
type BaseLogger interface {
	// NewLogger creates a new Logger instance from the base logger.
	//
	// Returns:
	//
	//   - Logger: A new instance of Logger.
	NewLogger() Logger
}

// Logger defines a structured logging interface with support for various log levels,
// formatting, and context-aware logging using key-value fields.
//
// The With* methods never modify the receiver; they return a derived Logger.
type Logger interface {
	// Info logs a message at the Info level.
	//
	// Example usage:
	//
	//   logger.Info("Application started")
	Info(msg string)

	// Infof logs a formatted message at the Info level.
	//
	// Example usage:
	//
	//   logger.Infof("Converted %d tokens", n)
	Infof(format string, args ...any)

	// Trace logs a message at the Trace level (very low-level debugging).
	Trace(msg string)

	// Tracef logs a formatted message at the Trace level.
	Tracef(format string, args ...any)

	// Error logs a message at the Error level.
	Error(msg string)

	// Errorf logs a formatted message at the Error level.
	Errorf(format string, args ...any)

	// Warn logs a message at the Warn level.
	Warn(msg string)

	// Warnf logs a formatted message at the Warn level.
	Warnf(format string, args ...any)

	// Debug logs a message at the Debug level.
	Debug(msg string)

	// Debugf logs a formatted message at the Debug level.
	Debugf(format string, args ...any)

	// Fatal logs a message at the Fatal level and terminates the application.
	Fatal(msg string)

	// Fatalf logs a formatted message at the Fatal level and terminates the application.
	Fatalf(format string, args ...any)

	// WithField returns a logger with a single field added to the context.
	//
	// Example usage:
	//
	//   logger.WithField("token_index", 2).Debug("token rejected")
	WithField(key string, value any) Logger

	// WithFields returns a logger with multiple fields added to the context.
	WithFields(fields map[string]any) Logger

	// WithRequestUUID returns a logger with a UUID request ID in the context.
	WithRequestUUID(id uuid.UUID) Logger

	// WithRandomRequestID returns a logger with a freshly generated UUID request ID.
	WithRandomRequestID() Logger

	// GetFields returns a copy of the current log context fields.
	GetFields() map[string]any

	// GetField returns the value of a field from the current log context, nil if absent.
	GetField(key string) any
}
