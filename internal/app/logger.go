package app

import (
	"fmt"
	"io"
	"log/slog"
)

// Accepted values for Config.LogFormat.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// parseLevel accepts the names slog prints: debug, info, warn and error,
// in any case.
func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
	return level, nil
}

// newLogger builds a logger writing to logW. The global default is left
// alone. An unparsable level falls back to warn; NewConfig has already
// rejected it on the normal path.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	level, err := parseLevel(levelStr)
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == logFormatJSON {
		return slog.New(slog.NewJSONHandler(logW, opts))
	}
	return slog.New(slog.NewTextHandler(logW, opts))
}
