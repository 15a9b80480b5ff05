// Package logger wires the process-wide slog logger.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Options selects the log level and output format.
type Options struct {
	Level   string // debug, info, warn or error
	Console bool   // text output for local runs instead of JSON
}

// Setup installs the default slog logger. Every record passes through the
// correlation handler so request- and sweep-scoped ids appear without
// explicit attributes at the call sites.
func Setup(opts Options) {
	handlerOpts := &slog.HandlerOptions{
		Level:     parseLevel(opts.Level),
		AddSource: true,
	}

	var handler slog.Handler
	if opts.Console {
		handler = slog.NewTextHandler(os.Stdout, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	}

	slog.SetDefault(slog.New(NewCorrelationHandler(handler)))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
