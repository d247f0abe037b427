// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Format represents the available log output formats
type Format string

const (
	FormatPretty Format = "pretty" // colorized, human-readable (tint)
	FormatJSON   Format = "json"   // JSON lines
	FormatText   Format = "text"   // key=value pairs
)

// Init builds a logger writing to w, installs it as the slog default and returns it.
func Init(w io.Writer, format Format, level slog.Level) *slog.Logger {
	var handler slog.Handler

	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case FormatText:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	default:
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

// ParseFormat converts a string to Format, defaulting to pretty
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatPretty
	}
}

// ParseLevel converts a string to slog.Level, defaulting to warn.
// The CLI is quiet unless asked otherwise.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
