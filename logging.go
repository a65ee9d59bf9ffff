package needle

import (
	"log/slog"
	"os"
)

// SetupLogging installs a process-wide slog handler. level is one of
// "debug", "info", "warn", "error"; format is "json" or "text".
func SetupLogging(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// componentLogger returns a logger scoped to a single engine component,
// the same "component" attribute convention used throughout this package.
func componentLogger(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
