// Package log provides file-backed structured logging for the Jarvis CLI.
// Command output goes to stdout; diagnostics go to a log file so that
// terminal output stays clean.
package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger wraps the underlying logging system for the CLI's purposes.
type Logger struct {
	logger *slog.Logger
	file   *os.File
}

// Config contains the information used to set up logging
type Config struct {
	// Log level. One of: debug, info, warn, error
	Level string
	// Path to the file to log into
	FilePath string
}

// New creates a Logger writing JSON records to the configured file
func New(config Config) (*Logger, error) {
	dir := filepath.Dir(config.FilePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(config.Level),
	}

	return &Logger{
		logger: slog.New(slog.NewJSONHandler(file, opts)),
		file:   file,
	}, nil
}

// Close the log file
func (l *Logger) Close() {
	if err := l.file.Close(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error closing logger: %v\n", err)
	}
}

// Debug logs a message at debug level
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs a message at info level
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs a message at error level
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
