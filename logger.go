package piecewisego

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with piecewisego-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMode adds a mode field ("dual" or "lower") to the logger.
func (l *Logger) WithMode(mode string) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode),
	}
}

// WithName adds a document name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogInsert logs a dual-bounded segment insertion.
func (l *Logger) LogInsert(lower, higher any, err error) {
	if err != nil {
		l.Error("segment insert rejected",
			"lower", lower,
			"higher", higher,
			"error", err,
		)
	} else {
		l.Debug("segment inserted",
			"lower", lower,
			"higher", higher,
		)
	}
}

// LogLowerInsert logs a lower-bounded segment insertion.
func (l *Logger) LogLowerInsert(lower any, err error) {
	if err != nil {
		l.Error("segment insert rejected",
			"lower", lower,
			"error", err,
		)
	} else {
		l.Debug("segment inserted",
			"lower", lower,
		)
	}
}

// LogBuild logs a build (finalize) operation.
func (l *Logger) LogBuild(mode string, segments int, err error) {
	if err != nil {
		l.Error("build failed",
			"mode", mode,
			"error", err,
		)
	} else {
		l.Debug("build completed",
			"mode", mode,
			"segments", segments,
		)
	}
}

// LogLoad logs a descriptor load operation.
func (l *Logger) LogLoad(ctx context.Context, name string, segments int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "load completed",
			"name", name,
			"segments", segments,
		)
	}
}
