// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment.
// Logs go to stderr because stdout may carry the rendered document.
func New(env string) *Logger {
	return NewWithWriter(env, os.Stderr)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(env string, w io.Writer) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithRunID returns a logger with the given run ID
func (l *Logger) WithRunID(runID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("run_id", runID)),
	}
}

// WithNewRunID returns a logger tagged with a freshly generated run ID.
func (l *Logger) WithNewRunID() *Logger {
	return l.WithRunID(uuid.NewString())
}

// FileError logs a failed file operation
func (l *Logger) FileError(operation, path string, err error) {
	l.Error("file_error",
		slog.String("operation", operation),
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}

// ConversionSummary logs the outcome of a conversion run
func (l *Logger) ConversionSummary(attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	l.Info("conversion_summary", args...)
}
