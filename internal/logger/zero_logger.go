package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ZeroLogger is a zerolog-backed Logger.
type ZeroLogger struct {
	log zerolog.Logger
}

// Ensure ZeroLogger implements Logger.
var _ Logger = (*ZeroLogger)(nil)

// NewZeroLogger returns a ZeroLogger writing JSON lines to w. Unknown level
// strings fall back to info.
func NewZeroLogger(w io.Writer, level string, defaultFields Fields) *ZeroLogger {
	zLevel := parseLevel(level)

	ctx := zerolog.New(w).With().Timestamp()
	for k, v := range defaultFields {
		ctx = ctx.Interface(k, v)
	}

	return &ZeroLogger{log: ctx.Logger().Level(zLevel)}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Debug logs at debug level.
func (l *ZeroLogger) Debug(message string, fields Fields) {
	l.log.Debug().Fields(map[string]interface{}(fields)).Msg(message)
}

// Info logs at info level.
func (l *ZeroLogger) Info(message string, fields Fields) {
	l.log.Info().Fields(map[string]interface{}(fields)).Msg(message)
}

// Error logs err at error level.
func (l *ZeroLogger) Error(err error, fields Fields) {
	l.log.Error().Fields(map[string]interface{}(fields)).Err(err).Msg(err.Error())
}

// Fatal logs err and stops the process.
func (l *ZeroLogger) Fatal(err error, fields Fields) {
	l.log.Fatal().Fields(map[string]interface{}(fields)).Err(err).Msg(err.Error())
}
