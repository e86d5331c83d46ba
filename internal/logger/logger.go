package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/jwebster45206/teletext/internal/config"
)

// Setup configures the global slog logger based on environment.
// Logs go to w, or stdout when w is nil.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	if w == nil {
		w = os.Stdout
	}

	// Configure handler based on environment
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// OpenFile opens path for appending log output. The console owns the
// terminal, so its logs cannot go to stdout.
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// WithSession adds the game session ID to logger context
func WithSession(logger *slog.Logger, sessionID string) *slog.Logger {
	return logger.With("session_id", sessionID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
