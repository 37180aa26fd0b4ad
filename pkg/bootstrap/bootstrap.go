package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abgdnv/stockroom/pkg/logger"
)

// NewLogger creates a new slog.Logger instance with the specified log level.
// Records are written as JSON to w and carry the session and command found in the context.
func NewLogger(level string, w io.Writer) *slog.Logger {
	logLevel := toLevel(level)
	loggerOpts := &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	}
	logHandler := slog.NewJSONHandler(w, loggerOpts)
	return slog.New(logger.NewContextHandler(logHandler))
}

// OpenLogOutput resolves a log destination: "stderr", "stdout" or a file path opened for appending.
// The returned close function is a no-op for the standard streams.
func OpenLogOutput(output string) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch output {
	case "", "stderr":
		return os.Stderr, noop, nil
	case "stdout":
		return os.Stdout, noop, nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open log file %s: %w", output, err)
	}
	return f, f.Close, nil
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
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
