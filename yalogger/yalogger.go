package yalogger

import (
	"io"

	"github.com/google/uuid"
)

// Config defines the configuration options for the logger.
//
// BaseLoggerType: The type of logger to use (e.g., Logrus).
// Level: The minimum log level to output (e.g., Warn).
// Output: Where log lines go. Nil means os.Stderr, keeping logs off the prompt stream.
// FullTimestamp: Whether to include the full timestamp in log messages.
// DisableTimestamp: Whether to disable timestamps in log messages.
// TimestampFormat: The format to use for timestamps in log messages.
type Config struct {
	BaseLoggerType   BaseLoggerType
	Level            Level
	Output           io.Writer
	FullTimestamp    bool
	DisableTimestamp bool
	TimestampFormat  string
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
type Logger interface {
	// Info logs a message at the Info level.
	//
	// Example usage:
	//
	//   logger.Info("Reader created")
	Info(msg string)

	// Infof logs a formatted message at the Info level.
	//
	// Example usage:
	//
	//   logger.Infof("Reading %s", kind)
	Infof(format string, args ...any)

	// Trace logs a message at the Trace level (very low-level debugging).
	//
	// Example usage:
	//
	//   logger.Trace("Line received")
	Trace(msg string)

	// Tracef logs a formatted message at the Trace level.
	//
	// Example usage:
	//
	//   logger.Tracef("Raw line: %q", line)
	Tracef(format string, args ...any)

	// Error logs a message at the Error level.
	//
	// Example usage:
	//
	//   logger.Error("Input stream closed")
	Error(msg string)

	// Errorf logs a formatted message at the Error level.
	//
	// Example usage:
	//
	//   logger.Errorf("Failed to flush output: %v", err)
	Errorf(format string, args ...any)

	// Warn logs a message at the Warn level.
	//
	// Example usage:
	//
	//   logger.Warn("Output is not a terminal, colors disabled")
	Warn(msg string)

	// Warnf logs a formatted message at the Warn level.
	//
	// Example usage:
	//
	//   logger.Warnf("Environment variable %s is not set", key)
	Warnf(format string, args ...any)

	// Debug logs a message at the Debug level.
	//
	// Example usage:
	//
	//   logger.Debug("Input rejected")
	Debug(msg string)

	// Debugf logs a formatted message at the Debug level.
	//
	// Example usage:
	//
	//   logger.Debugf("Attempt %d rejected", attempt)
	Debugf(format string, args ...any)

	// Fatal logs a message at the Fatal level and terminates the application.
	//
	// Example usage:
	//
	//   logger.Fatal("Unable to read from stdin")
	Fatal(msg string)

	// Fatalf logs a formatted message at the Fatal level and terminates the application.
	//
	// Example usage:
	//
	//   logger.Fatalf("Unable to read from stdin: %v", err)
	Fatalf(format string, args ...any)

	// WithField returns a logger instance with a single field added to the context.
	//
	// Example usage:
	//
	//   logger.WithField("read_type", "int32")
	WithField(key string, value any) Logger

	// WithFields returns a logger instance with multiple fields added to the context.
	//
	// Example usage:
	//
	//   logger.WithFields(map[string]any{"read_type": "int32", "attempt": 2})
	WithFields(fields map[string]any) Logger

	// WithReadID returns a logger with the read call identifier in the context.
	// Every attempt of one read call shares the same identifier.
	//
	// Example usage:
	//
	//   logger.WithReadID(uuid.New())
	WithReadID(id uuid.UUID) Logger

	// WithRandomReadID returns a logger with a freshly generated read identifier.
	//
	// Example usage:
	//
	//   logger.WithRandomReadID().Debug("Read started")
	WithRandomReadID() Logger

	// GetFields returns the current log context fields as a map.
	GetFields() map[string]any

	// GetField returns the value of a field from the current log context, or nil.
	//
	// Example usage:
	//
	//   kind, ok := logger.GetField("read_type").(string)
	GetField(key string) any
}
