package logger

import (
	"sync"

	"github.com/philipp01105/idlog/colorizer"
	"github.com/philipp01105/idlog/config"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Config{Env: "development", ColorTTL: colorizer.DefaultTTL}
	}
	defaultLogger = New(cfg)
	if err != nil {
		defaultLogger.Warn("idlog", "ignoring logging environment", err)
	}
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Verbose logs a verbose message using the default logger
func Verbose(tag, msg string, err ...error) {
	Default().Verbose(tag, msg, err...)
}

// Debug logs a debug message using the default logger
func Debug(tag, msg string, err ...error) {
	Default().Debug(tag, msg, err...)
}

// Info logs an info message using the default logger
func Info(tag, msg string, err ...error) {
	Default().Info(tag, msg, err...)
}

// Warn logs a warning message using the default logger
func Warn(tag, msg string, err ...error) {
	Default().Warn(tag, msg, err...)
}

// Error logs an error message using the default logger
func Error(tag, msg string, err ...error) {
	Default().Error(tag, msg, err...)
}

// Assert logs using the default logger and exits the program
func Assert(tag, msg string, err ...error) {
	Default().Assert(tag, msg, err...)
}

// Verbosef logs a formatted verbose message using the default logger
func Verbosef(tag, format string, args ...interface{}) {
	Default().Verbosef(tag, format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(tag, format string, args ...interface{}) {
	Default().Debugf(tag, format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(tag, format string, args ...interface{}) {
	Default().Infof(tag, format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(tag, format string, args ...interface{}) {
	Default().Warnf(tag, format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(tag, format string, args ...interface{}) {
	Default().Errorf(tag, format, args...)
}

// Assertf logs a formatted message using the default logger and exits the program
func Assertf(tag, format string, args ...interface{}) {
	Default().Assertf(tag, format, args...)
}
