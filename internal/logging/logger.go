// Package logging decouples the application from the logging framework.
// Components receive a Logger through their constructors; production code
// uses the logrus-backed adapter and tests use MockLogger.
package logging

// Logger is the structured logger used throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a derived logger carrying err
	WithError(err error) Logger

	// WithField returns a derived logger carrying one field
	WithField(key string, value interface{}) Logger

	// WithFields returns a derived logger carrying several fields
	WithFields(fields ...Field) Logger
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}
