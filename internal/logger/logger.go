// Package logger builds the structured logger used by the dbc binaries.
// Contract violations reported in trace mode flow through the same handler,
// so a single format and level apply to application and contract output.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/rafaeljc/dbc/internal/config"
)

// New returns a logger writing to os.Stdout.
func New(cfg *config.AppConfig) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter returns a logger writing to w, configured from cfg.
func NewWithWriter(cfg *config.AppConfig, w io.Writer) *slog.Logger {
	if cfg == nil {
		panic("logger: config cannot be nil")
	}

	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.LogLevel),
		AddSource: cfg.Environment != config.EnvironmentProduction,
	}

	switch cfg.LogFormat {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", cfg.Name),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Environment),
	)
}

// ParseLevel converts a level name to slog.Level, case-insensitively.
// Unknown names fall back to Info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ContractLevel is the level used for trace-mode contract output.
// It is Warn, or the configured level when that is higher.
func ContractLevel(cfg *config.AppConfig) slog.Level {
	level := ParseLevel(cfg.LogLevel)
	if level > slog.LevelWarn {
		return level
	}
	return slog.LevelWarn
}
