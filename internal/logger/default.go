package logger

import (
	"os"
	"sync/atomic"

	"github.com/roach88/ease/internal/env"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(env.New(env.Defaults{}), NewWriterSink(os.Stderr)))
}

// Default returns the process-wide logger. It reads its flags from EASE_*
// environment variables and writes to stderr until SetDefault replaces it.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault makes l the process-wide logger.
func SetDefault(l *Logger) {
	defaultLogger.Store(l)
}

// Debug calls Default().Debug, attributing the entry to the caller.
func Debug(message any, opts ...CallOption) {
	l := Default()
	l.logDebug(message, l.callConfig(opts))
}

// Error calls Default().Error, attributing the entry to the caller.
func Error(message any, opts ...CallOption) {
	l := Default()
	l.logError(message, l.callConfig(opts))
}

// Wrong calls Default().Wrong, attributing the entry to the caller.
func Wrong(message any, asError bool, opts ...CallOption) {
	l := Default()
	cfg := l.callConfig(opts)
	if asError {
		l.logError(wrongText(message), cfg)
		return
	}
	l.logDebug(wrongText(message), cfg)
}
