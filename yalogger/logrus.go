package yalogger

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// logrusAdapter is an adapter that implements the Logger interface using a logrus.Entry.
type logrusAdapter struct {
	entry *logrus.Entry
}

// baseLogrus holds the configured logrus.Logger new Logger instances derive from.
type baseLogrus struct {
	logger *logrus.Logger
}

// NewBaseLogger creates and configures a new base logger based on the provided configuration.
// A nil config yields a Warn level logrus logger on stderr without timestamps.
//
// Notes:
//
//   - If the logger type specified in config is not supported, the function panics.
func NewBaseLogger(config *Config) BaseLogger {
	if config == nil {
		config = &Config{
			BaseLoggerType:   Logrus,
			Level:            WarnLevel,
			TimestampFormat:  DefaultTimestampFormat,
			DisableTimestamp: true,
		}
	}

	switch config.BaseLoggerType {
	case Logrus:
		base := logrus.New()
		base.SetLevel(logrus.Level(config.Level))
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    config.FullTimestamp,
			TimestampFormat:  config.TimestampFormat,
			DisableTimestamp: config.DisableTimestamp,
		})

		if config.Output != nil {
			base.SetOutput(config.Output)
		} else {
			base.SetOutput(os.Stderr)
		}

		return &baseLogrus{logger: base}
	default:
		panic("Unsupported logger type, you are a teapot!!!")
	}
}

// NewDefaultLogger is shorthand for NewBaseLogger(nil).NewLogger().
func NewDefaultLogger() Logger {
	return NewBaseLogger(nil).NewLogger()
}

// NewLogger wraps a fresh entry of the base logrus logger.
func (b *baseLogrus) NewLogger() Logger {
	return &logrusAdapter{entry: logrus.NewEntry(b.logger)}
}

func (l *logrusAdapter) Info(msg string) {
	l.entry.Info(msg)
}

func (l *logrusAdapter) Infof(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *logrusAdapter) Error(msg string) {
	l.entry.Error(msg)
}

func (l *logrusAdapter) Errorf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

func (l *logrusAdapter) Warn(msg string) {
	l.entry.Warn(msg)
}

func (l *logrusAdapter) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *logrusAdapter) Debug(msg string) {
	l.entry.Debug(msg)
}

func (l *logrusAdapter) Debugf(format string, args ...any) {
	l.entry.Debugf(format, args...)
}

// Fatal logs at the Fatal level and terminates the application through logrus' exit handler.
func (l *logrusAdapter) Fatal(msg string) {
	l.entry.Fatal(msg)
}

// Fatalf logs a formatted message at the Fatal level and terminates the application.
func (l *logrusAdapter) Fatalf(format string, args ...any) {
	l.entry.Fatalf(format, args...)
}

func (l *logrusAdapter) Trace(msg string) {
	l.entry.Trace(msg)
}

func (l *logrusAdapter) Tracef(format string, args ...any) {
	l.entry.Tracef(format, args...)
}

// WithField returns a new Logger with key set in the log context.
// The receiver is left untouched.
//
// Example usage:
//
//	logger.WithField("read_type", "uint8").Debug("Input rejected")
func (l *logrusAdapter) WithField(key string, value any) Logger {
	return &logrusAdapter{entry: l.entry.WithField(key, value)}
}

// WithFields returns a new Logger with every pair of fields added to the log context.
func (l *logrusAdapter) WithFields(fields map[string]any) Logger {
	return &logrusAdapter{entry: l.entry.WithFields(fields)}
}

func (l *logrusAdapter) WithReadID(id uuid.UUID) Logger {
	return l.WithField(KeyReadID, id)
}

func (l *logrusAdapter) WithRandomReadID() Logger {
	return l.WithReadID(uuid.New())
}

func (l *logrusAdapter) GetFields() map[string]any {
	return l.entry.Data
}

// GetField returns the value of a specific field from the log context, or nil if it is unset.
func (l *logrusAdapter) GetField(key string) any {
	val, ok := l.entry.Data[key]
	if !ok {
		return nil
	}

	return val
}
