package log

import "sync"

var (
	defaultLogger *Logger
	mu            sync.RWMutex
)

// SetDefaultLogger sets the default global logger used by the package-level
// logging functions. Logging is a no-op until one is set.
func SetDefaultLogger(logger *Logger) {
	mu.Lock()
	defaultLogger = logger
	mu.Unlock()
}

// DefaultLogger returns the current default logger
func DefaultLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Debug logs at debug level using the default logger
func Debug(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs at info level using the default logger
func Info(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs at warn level using the default logger
func Warn(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs at error level using the default logger
func Error(msg string, args ...any) {
	if logger := DefaultLogger(); logger != nil {
		logger.Error(msg, args...)
	}
}
