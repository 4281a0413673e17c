package logger

// NullLogger is a no-op implementation of the Logger interface.
type NullLogger struct{}

// Ensure NullLogger implements Logger.
var _ Logger = (*NullLogger)(nil)

// NewNullLogger returns an instance of NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Debug does nothing.
func (l *NullLogger) Debug(_ string, _ Fields) {}

// Info does nothing.
func (l *NullLogger) Info(_ string, _ Fields) {}

// Error does nothing.
func (l *NullLogger) Error(_ error, _ Fields) {}

// Fatal does nothing.
func (l *NullLogger) Fatal(_ error, _ Fields) {}
