package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled bool
	// Path of the active log file; rotated backups are written next to it.
	Path          string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, os.Stderr)
}

func newWithWriter(cfg Config, out io.Writer) zerolog.Logger {
	var output = out

	switch cfg.Format {
	case "console", "pretty":
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	case "json":
		// JSON is the default zerolog format
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format != "" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// SPLITGRID_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// SPLITGRID_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("SPLITGRID_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("SPLITGRID_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// NewWithFile creates a logger that writes to a rotating file, and to stderr
// as well when requested. The returned cleanup closes the file.
//
// A full-screen terminal UI owns stdout and stderr, so the run command
// disables WriteToStderr and relies on the file alone.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled || fileCfg.Path == "" {
		return New(cfg), func() {}, nil
	}

	dir := filepath.Dir(fileCfg.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("failed to create log directory: %w", err)
	}

	maxSize := fileCfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	rotator, err := NewRotatingFile(RotateConfig{
		Path:       fileCfg.Path,
		MaxSize:    int64(maxSize) << 20,
		MaxBackups: fileCfg.MaxBackups,
		MaxAge:     time.Duration(fileCfg.MaxAgeDays) * 24 * time.Hour,
		Compress:   fileCfg.Compress,
	})
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	var out io.Writer = rotator
	if fileCfg.WriteToStderr {
		out = io.MultiWriter(rotator, os.Stderr)
	}

	// Runs after the UI has released the terminal.
	cleanup := func() {
		if err := errors.Join(rotator.Err(), rotator.Close()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: log file: %v\n", err)
		}
	}
	return newWithWriter(cfg, out), cleanup, nil
}
