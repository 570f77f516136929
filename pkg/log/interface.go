// Package log provides a structured logging interface for the boosting engine.
//
// This package defines a minimal, slog-compatible logging interface so that
// engine components (loss factories, compute zones, the update kernel driver)
// can emit structured records without binding to a concrete backend. The
// default implementation routes through Go's log/slog with a handler that
// extracts cockroachdb/errors stack traces into a dedicated attribute.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("compute.cpu64").With(
//	    log.LossNameKey, "log_loss",
//	    log.OutputsKey, 3,
//	)
//	logger.Info("loss handle created",
//	    log.OperationKey, log.OperationCreateLoss,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface supports method chaining through the With method, allowing
// creation of contextual loggers with pre-populated fields. Implementations
// must be safe for concurrent use.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is passed via ErrAttr, stack trace information is
	// extracted into a separate attribute by the default handler.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	//
	// Example:
	//
	//	zoneLogger := logger.With(log.ZoneKey, "cpu_64")
	//	zoneLogger.Debug("kernel dispatched")  // includes the zone field
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to avoid building expensive attribute values that would be
	// discarded.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider defines an interface for creating and configuring loggers.
// It allows dependency injection and testing with different logger
// implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for loggers created by this provider.
	SetLevel(level Level)
}
