// file: internal/logging/slog_logger.go
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LogLevel represents the minimum severity a log entry needs to be emitted.
type LogLevel string

// Supported log levels, mapped onto slog levels.
const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// levelVar backs the current level so it can be changed at runtime.
var levelVar = new(slog.LevelVar)

// slogLogger adapts the standard library's structured logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// InitLogging configures the default logger to write JSON entries at the
// given level to w. Passing a nil writer logs to stderr.
func InitLogging(level LogLevel, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	levelVar.Set(slogLevel(level))
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelVar})
	SetDefaultLogger(&slogLogger{logger: slog.New(handler)})
}

// SetLevel changes the minimum level of the logger configured by InitLogging.
func SetLevel(level LogLevel) {
	levelVar.Set(slogLevel(level))
}

// IsDebugEnabled reports whether debug entries are currently emitted.
func IsDebugEnabled() bool {
	return levelVar.Level() <= slog.LevelDebug
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug-level message.
func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Info logs an info-level message.
func (l *slogLogger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

// Warn logs a warning-level message.
func (l *slogLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

// Error logs an error-level message.
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// WithContext returns the logger itself; slog attaches context per call site.
func (l *slogLogger) WithContext(_ context.Context) Logger { return l }

// WithField returns a logger with an additional structured field.
func (l *slogLogger) WithField(key string, value any) Logger {
	return &slogLogger{logger: l.logger.With(key, value)}
}
