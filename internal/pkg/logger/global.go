package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	once         sync.Once
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance; call once during startup
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger, falling back to a default
// production logger if none was set.
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		once.Do(func() {
			defaultLogger, _ := zap.NewProduction()
			globalLogger = &ZapLogger{Logger: defaultLogger}
		})
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) { GetGlobalLogger().Info(msg, fields...) }

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) { GetGlobalLogger().Warn(msg, fields...) }

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) { GetGlobalLogger().Error(msg, fields...) }

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) { GetGlobalLogger().Debug(msg, fields...) }

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) { GetGlobalLogger().Fatal(msg, fields...) }
