package logger

// Fields carries structured context attached to a log entry.
type Fields map[string]interface{}

// Logger is the logging contract used across the application.
type Logger interface {
	Debug(message string, fields Fields)
	Info(message string, fields Fields)
	Error(err error, fields Fields)
	Fatal(err error, fields Fields)
}
