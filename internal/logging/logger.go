// Package logging wraps log/slog for noted. Output goes to a rotated file;
// with no file configured every call is discarded.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger
type Logger struct {
	logger  *slog.Logger
	enabled bool
}

// LogFormat represents the output format for logs
type LogFormat string

const (
	// FormatText outputs human-readable text logs
	FormatText LogFormat = "text"
	// FormatJSON outputs structured JSON logs
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	FilePath   string     // Log file; empty disables logging
	Level      slog.Level // Minimum level
	Format     LogFormat  // text or json
	MaxSizeMB  int        // Rotate after this many megabytes
	MaxBackups int        // Rotated files to keep
}

var (
	mu      sync.RWMutex
	current *Logger
	closer  io.Closer

	discard = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init replaces the global logger. An empty FilePath installs the discard
// logger. Any previously opened log file is closed.
func Init(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = closer.Close()
		closer = nil
	}

	if config.FilePath == "" {
		current = discard
		return nil
	}

	writer := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{Level: config.Level}
	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	current = &Logger{logger: slog.New(handler), enabled: true}
	closer = writer
	return nil
}

// Get returns the global logger, or the discard logger before Init
func Get() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return discard
	}
	return current
}

// Shutdown closes the log file, if any, and reverts to the discard logger
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	current = discard
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// With returns a Logger that adds the key-value pairs to every record
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), enabled: l.enabled}
}

// IsEnabled reports whether records go anywhere
func (l *Logger) IsEnabled() bool {
	return l.enabled
}

// Package-level shorthands for the global logger

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// IsEnabled reports whether the global logger writes anywhere
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel converts a level name to slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
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

// ParseFormat converts a format name to LogFormat, defaulting to text
func ParseFormat(format string) LogFormat {
	if strings.EqualFold(format, string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}
