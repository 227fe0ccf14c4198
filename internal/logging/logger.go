package logging

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured logger with sane defaults.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// WithComponent returns a child logger tagged with a component name, or nil if
// the parent is nil.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String(FieldComponent, component))
}
