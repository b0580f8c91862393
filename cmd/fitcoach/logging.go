package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/meltforce/fitcoach/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger writes to stdout, and also to a rotating file when one is
// configured. cleanup closes the file.
func newLogger(cfg config.LoggingConfig, stdout io.Writer) (log *slog.Logger, cleanup func()) {
	out := stdout
	cleanup = func() {}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(stdout, lj)
		cleanup = func() { _ = lj.Close() }
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(out, opts)), cleanup
	}
	return slog.New(slog.NewTextHandler(out, opts)), cleanup
}

func bootLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
