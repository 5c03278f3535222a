package logger

import (
	"sync"
)

// Log levels accepted in configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	// globalLogger holds the process-wide logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide logger, initializing it with the provided
// level on first call. Later calls ignore the level and return the same
// instance, so main must call Get before any other package does.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level)
	})
	return globalLogger
}
