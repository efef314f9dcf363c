package getresult

import (
	"io"
	"log/slog"
	"os"

	"github.com/viant/getresult/token"
)

// Logger wraps slog.Logger with assembly specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a debug level text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to w at the given level.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// LogSkipped logs an unknown structure skipped for forward compatibility.
func (l *Logger) LogSkipped(field string, kind token.Kind, offset int) {
	if l == nil {
		return
	}
	l.Debug("skipped unknown structure",
		"field", field,
		"kind", kind.String(),
		"offset", offset,
	)
}

// LogAssembled logs a completed assembly.
func (l *Logger) LogAssembled(result *Result) {
	if l == nil {
		return
	}
	l.Debug("get result assembled",
		"index", result.Index(),
		"id", result.ID(),
		"version", result.Version(),
		"source_bytes", len(result.source),
		"document_fields", len(result.documentFields),
		"meta_fields", len(result.metaFields),
	)
}
