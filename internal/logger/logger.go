package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a logger writing human-readable lines to console and JSON lines appended to the file at path.
// The log directory is created if needed. Close the returned io.Closer on shutdown.
// An empty path logs to console only.
func New(console io.Writer, path, level string) (zerolog.Logger, io.Closer, error) {
	lvl := ParseLevel(level)
	out := zerolog.ConsoleWriter{Out: console, TimeFormat: "2006-01-02 15:04:05"}
	if path == "" {
		return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logger: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logger: %w", err)
	}
	w := zerolog.MultiLevelWriter(out, f)
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), f, nil
}

// ParseLevel maps debug|info|warn|error (any case) to a zerolog level. Unknown values are info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
