package topk

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with selection-specific context.
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

// WithK adds a k (selection capacity) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogResults logs a results extraction.
func (l *Logger) LogResults(k, count int, sorted, drained bool) {
	l.Debug("results extracted",
		"k", k,
		"count", count,
		"sorted", sorted,
		"drained", drained,
	)
}

// LogCompute logs a one-shot batch selection.
func (l *Logger) LogCompute(k, offered, parallelism int) {
	l.Debug("compute completed",
		"k", k,
		"offered", offered,
		"parallelism", parallelism,
	)
}

// LogMerge logs a merge across selectors.
func (l *Logger) LogMerge(sources, accepted int) {
	l.Debug("merge completed",
		"sources", sources,
		"accepted", accepted,
	)
}

// LogReset logs a selector reset.
func (l *Logger) LogReset(discarded int) {
	l.Debug("selector reset",
		"discarded", discarded,
	)
}
