package artgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with artgo-specific context.
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

// WithVigilance adds a vigilance field to the logger.
func (l *Logger) WithVigilance(v float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("vigilance", v),
	}
}

// WithCategory adds a category id field to the logger.
func (l *Logger) WithCategory(id int) *Logger {
	return &Logger{
		Logger: l.Logger.With("category", id),
	}
}

// LogResonance logs a successful recognition.
func (l *Logger) LogResonance(category int, match float64, resets int) {
	l.Debug("resonance",
		"category", category,
		"match", match,
		"resets", resets,
	)
}

// LogCreation logs the creation of a new category.
func (l *Logger) LogCreation(category, stored, max int) {
	l.Debug("category created",
		"category", category,
		"stored", stored,
		"max", max,
	)
}

// LogExhausted logs the degraded fallback taken when every category was
// rejected and capacity is full.
func (l *Logger) LogExhausted(fallback, stored int, vigilance float64) {
	l.Warn("search exhausted, degraded fallback",
		"fallback_category", fallback,
		"stored", stored,
		"vigilance", vigilance,
	)
}
