package app

import (
	"io"
	"log/slog"
)

// NewLogger returns a JSON logger writing to w at the named level
// (debug, info, warn, error). An unrecognised level falls back to info.
func NewLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
