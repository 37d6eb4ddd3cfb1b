package bibit

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/bibit/sweep"
)

// Logger wraps slog.Logger with bibit-specific helpers so lifecycle events
// carry consistent field names. The nil *Logger is valid and discards
// everything.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, a
// text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger with human-readable output to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger with JSON output to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// WithMatrix adds the matrix dimensions to the logger.
func (l *Logger) WithMatrix(rows, cols int) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{Logger: l.Logger.With("rows", rows, "cols", cols)}
}

// LogSearch logs one single-configuration search.
func (l *Logger) LogSearch(ctx context.Context, p sweep.Params, found int, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"bwl", p.Width,
			"mnr", p.MinRows,
			"mnc", p.MinCols,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "search completed",
		"bwl", p.Width,
		"mnr", p.MinRows,
		"mnc", p.MinCols,
		"biclusters", found,
	)
}
