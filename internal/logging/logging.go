// Package logging configures the zerolog loggers used by the cropbox
// command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns the configuration used when nothing else is
// specified.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// Parse builds a Config from the textual level and format found in
// configuration files. Empty values keep their defaults.
func Parse(level, format string) (Config, error) {
	cfg := DefaultConfig()

	if level != "" {
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			return cfg, fmt.Errorf("parse level: %w", err)
		}
		cfg.Level = lvl
	}

	switch format {
	case "":
	case "json", "console":
		cfg.Format = format
	default:
		return cfg, fmt.Errorf("unknown log format %q", format)
	}

	return cfg, nil
}

// New creates a logger that writes to w.
func New(w io.Writer, cfg Config) zerolog.Logger {
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    w != os.Stderr,
		}
	}

	return zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// OpenFile creates a logger that appends to the file at path, creating
// it and its parent directories if necessary. The file is rotated once
// it grows past a few megabytes. The returned closer must be closed
// when the logger is no longer needed.
func OpenFile(path string, cfg Config) (zerolog.Logger, io.Closer, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}

	rot := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
	}
	return New(rot, cfg), rot, nil
}
