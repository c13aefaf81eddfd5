package ecsgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with ecsgo-specific helpers.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithArchetype adds an archetype id field to the logger.
func (l *Logger) WithArchetype(id uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("archetype", id),
	}
}

// LogArchetypeCreated logs the creation of a new archetype.
func (l *Logger) LogArchetypeCreated(id uint32, kinds []string) {
	l.Debug("archetype created",
		"archetype", id,
		"kinds", kinds,
	)
}

// LogBulkBuild logs a bulk entity build.
func (l *Logger) LogBulkBuild(archetypeID uint32, count int) {
	l.Debug("bulk build completed",
		"archetype", archetypeID,
		"count", count,
	)
}

// LogMutation logs an entity moving between archetypes.
func (l *Logger) LogMutation(from, to uint32) {
	l.Debug("entity mutated",
		"from", from,
		"to", to,
	)
}

// LogQueryAttached logs the first scan of a query.
func (l *Logger) LogQueryAttached(scanned, matched int) {
	l.Debug("query attached",
		"scanned", scanned,
		"matched", matched,
	)
}
