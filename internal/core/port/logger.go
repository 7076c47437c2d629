package port

// Fields carries structured data attached to a log entry.
type Fields map[string]interface{}

// LoggerPort is the logging contract used across the core. Adapters exist
// for slog (stdout) and fluent-bit; the multilogger fans out to both.
type LoggerPort interface {
	Info(msg string, fields Fields)

	Warn(msg string, fields Fields)

	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields returns a new logger with the fields pre-attached.
	WithFields(fields Fields) LoggerPort
}
