package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// levelVar holds the minimum level for the default pipeline.
// Defaults to Info until SetupLogger or SetLevel is called.
var levelVar = new(slog.LevelVar)

// SetupLogger configures the default slog pipeline: a JSON handler wrapped
// by ErrFmtHandler so that errors logged via ErrAttr carry their stack trace
// as a separate attribute.
func SetupLogger(loglevel string) {
	levelVar.Set(ToLogLevel(loglevel))
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     levelVar,
		// Replace attributes to convert to CloudLogging format.
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			case slog.SourceKey:
				attr = slog.Attr{
					Key:   "logging.googleapis.com/sourceLocation",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel converts a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) Debug(msg string, fields ...any) { s.l.Debug(msg, fields...) }

func (s *slogLogger) Info(msg string, fields ...any) { s.l.Info(msg, fields...) }

func (s *slogLogger) Warn(msg string, fields ...any) { s.l.Warn(msg, fields...) }

func (s *slogLogger) Error(msg string, fields ...any) { s.l.Error(msg, fields...) }

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{l: s.l.With(fields...)}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.l.Enabled(ctx, slog.Level(level))
}

// GetLogger returns a Logger backed by the current slog default.
func GetLogger() Logger {
	return &slogLogger{l: slog.Default()}
}

// GetLoggerWithName returns a Logger with a component identifier attached.
// Component names follow a dotted convention, e.g. "compute.cpu64" or
// "bridge.registry".
func GetLoggerWithName(name string) Logger {
	return &slogLogger{l: slog.Default().With(slog.String(ComponentKey, name))}
}

// SetLevel adjusts the minimum level of the default pipeline.
func SetLevel(level Level) {
	levelVar.Set(slog.Level(level))
}

// DefaultProvider exposes the package-level accessors through the
// LoggerProvider interface.
type DefaultProvider struct{}

func (DefaultProvider) GetLogger() Logger { return GetLogger() }

func (DefaultProvider) GetLoggerWithName(name string) Logger { return GetLoggerWithName(name) }

func (DefaultProvider) SetLevel(level Level) { SetLevel(level) }
