// Package logging provides a logging abstraction that decouples the tool
// from the underlying logging framework.
package logging

// Logger is the structured logging interface used by the CLI and the file
// loaders. The document builder itself never logs.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// F creates a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Standardized field names used across the tool's log output.
const (
	FieldFile         = "file_path"
	FieldMessageID    = "message_id"
	FieldPaymentID    = "payment_id"
	FieldSPSVersion   = "sps_version"
	FieldTransactions = "transactions"
	FieldFormat       = "format"
)
