package app

import (
	"io"
	"log/slog"
	"os"

	"jobboard/internal/config"
)

// NewLogger returns a JSON logger tagged with the app name and environment.
// Debug records are kept outside production.
func NewLogger(cfg config.AppConfig) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

func newLogger(w io.Writer, cfg config.AppConfig) *slog.Logger {
	level := slog.LevelDebug
	if cfg.Environment == "production" {
		level = slog.LevelInfo
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("app", cfg.AppName, "env", cfg.Environment)
}
