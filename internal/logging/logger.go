// Package logging provides a common interface and setup for application-wide logging.
package logging

// file: internal/logging/logger.go

import (
	"context"
)

// Logger defines the interface for logging within the application.
// This abstraction allows for different logger implementations while
// maintaining consistent logging conventions throughout the codebase.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, args ...any)

	// Info logs an info-level message.
	Info(msg string, args ...any)

	// Warn logs a warning-level message.
	Warn(msg string, args ...any)

	// Error logs an error-level message.
	Error(msg string, args ...any)

	// WithContext returns a logger with context values.
	WithContext(ctx context.Context) Logger

	// WithField returns a logger with an additional field.
	WithField(key string, value any) Logger
}

// NoopLogger implements Logger but does nothing.
// Used as a fallback when no logger is provided.
type NoopLogger struct{}

// Debug implements Logger but performs no action.
func (l *NoopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger but performs no action.
func (l *NoopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger but performs no action.
func (l *NoopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger but performs no action.
func (l *NoopLogger) Error(_ string, _ ...any) {}

// WithContext implements Logger, returning the NoopLogger itself.
func (l *NoopLogger) WithContext(_ context.Context) Logger { return l }

// WithField implements Logger, returning the NoopLogger itself.
func (l *NoopLogger) WithField(_ string, _ any) Logger { return l }

// Global singleton instance of NoopLogger.
var noop = &NoopLogger{}

// GetNoopLogger returns the no-op logger instance.
func GetNoopLogger() Logger {
	return noop
}

// defaultLogger is the application's default logger instance.
var defaultLogger Logger = GetNoopLogger()

// SetDefaultLogger sets the default logger for the application.
func SetDefaultLogger(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// GetLogger returns a named logger, used by packages to get their own
// logger. Resolution of the backing logger is deferred to each call, so a
// logger fetched at package init still picks up whatever InitLogging
// installs later.
func GetLogger(name string) Logger {
	return &componentLogger{name: name}
}

// field is one key/value pair accumulated through WithField.
type field struct {
	key   string
	value any
}

// componentLogger is a late-binding view onto the default logger. It holds
// only the component name and accumulated fields; every log call resolves
// against the current default logger.
type componentLogger struct {
	name   string
	fields []field
	ctx    context.Context
}

func (l *componentLogger) resolve() Logger {
	base := defaultLogger.WithField("component", l.name)
	for _, f := range l.fields {
		base = base.WithField(f.key, f.value)
	}
	if l.ctx != nil {
		base = base.WithContext(l.ctx)
	}
	return base
}

// Debug logs a debug-level message through the current default logger.
func (l *componentLogger) Debug(msg string, args ...any) { l.resolve().Debug(msg, args...) }

// Info logs an info-level message through the current default logger.
func (l *componentLogger) Info(msg string, args ...any) { l.resolve().Info(msg, args...) }

// Warn logs a warning-level message through the current default logger.
func (l *componentLogger) Warn(msg string, args ...any) { l.resolve().Warn(msg, args...) }

// Error logs an error-level message through the current default logger.
func (l *componentLogger) Error(msg string, args ...any) { l.resolve().Error(msg, args...) }

// WithContext returns a copy of the logger carrying the given context.
func (l *componentLogger) WithContext(ctx context.Context) Logger {
	clone := *l
	clone.ctx = ctx
	return &clone
}

// WithField returns a copy of the logger with one more field attached.
func (l *componentLogger) WithField(key string, value any) Logger {
	clone := *l
	clone.fields = append(append([]field(nil), l.fields...), field{key: key, value: value})
	return &clone
}
