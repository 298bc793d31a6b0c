// Package logging builds zerolog loggers and carries them through context.Context.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled       bool
	Dir           string
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

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, os.Stderr)
}

func newWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	output := w
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that also writes to a rotating file in cfg.Dir.
// The returned cleanup closes the file and must be called on shutdown.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled {
		if !fileCfg.WriteToStderr {
			return zerolog.Nop(), func() {}, nil
		}
		return New(cfg), func() {}, nil
	}

	if err := os.MkdirAll(fileCfg.Dir, 0o750); err != nil {
		return New(cfg), func() {}, fmt.Errorf("failed to create log dir: %w", err)
	}

	maxSize := fileCfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	rotator, err := NewLogRotator(fileCfg.Dir, maxSize, fileCfg.MaxBackups, fileCfg.MaxAgeDays, fileCfg.Compress)
	if err != nil {
		return New(cfg), func() {}, err
	}

	// Files always get JSON so they stay greppable.
	fileLogger := newWithWriter(Config{Level: cfg.Level, Format: "json"}, rotator)
	if !fileCfg.WriteToStderr {
		return fileLogger, func() { _ = rotator.Close() }, nil
	}

	var stderr io.Writer = os.Stderr
	if cfg.Format == "console" {
		stderr = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
	}
	logger := zerolog.New(zerolog.MultiLevelWriter(stderr, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, func() { _ = rotator.Close() }, nil
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
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

// NewFromConfigValues creates a console or json logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" {
		cfg.Format = "json"
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// NETGUARD_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// NETGUARD_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("NETGUARD_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("NETGUARD_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}
