// Logging is an ambient, cross-cutting concern shared by every PAL surface
// (errors, allocation tracing, bootstrap failures). It is implemented on top
// of logiface, a generic structured-logging front end, with stumpy as the
// default zero-allocation JSON backend. Callers that want a different sink
// can call SetLogger with their own stumpy-backed logiface.Logger; loggers
// over other logiface backends have a different type and are not accepted.
package pal

import (
	"sync"
	"sync/atomic"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the type every PAL subsystem logs through. It is a type alias
// for the stumpy-backed logiface logger so callers needn't import stumpy
// directly to build one.
type Logger = logiface.Logger[*stumpy.Event]

var (
	defaultLoggerOnce sync.Once
	currentLogger     atomic.Pointer[Logger]
)

func defaultLogger() *Logger {
	defaultLoggerOnce.Do(func() {
		l := stumpy.L.New(
			stumpy.L.WithStumpy(),
		)
		currentLogger.Store(l)
	})
	return currentLogger.Load()
}

// SetLogger replaces the package-wide logger used by every PAL and memory
// subsystem call that emits structured diagnostics (tracing allocators,
// bootstrap failures, last-error updates). Passing nil restores the default
// stumpy-backed logger.
func SetLogger(l *Logger) {
	if l == nil {
		defaultLoggerOnce = sync.Once{}
		currentLogger.Store(nil)
		defaultLogger()
		return
	}
	currentLogger.Store(l)
}

func activeLogger() *Logger {
	if l := currentLogger.Load(); l != nil {
		return l
	}
	return defaultLogger()
}

// LogInfo emits an informational structured log line through the shared
// logger, for use by other packages in this module (memory, jobs) that
// want the same sink and level taxonomy as the platform layer without
// importing logiface directly.
func LogInfo(component, message string, kvs ...any) { logEvent("info", component, message, kvs...) }

// LogWarn emits a warning-level structured log line.
func LogWarn(component, message string, kvs ...any) { logEvent("warn", component, message, kvs...) }

// LogDebug emits a debug-level structured log line.
func LogDebug(component, message string, kvs ...any) { logEvent("debug", component, message, kvs...) }

// logEvent is the narrow internal helper every subsystem calls; it keeps
// logiface's generic Builder type out of every call site.
func logEvent(level, component, message string, kvs ...any) {
	logger := activeLogger()
	var b *logiface.Builder[*stumpy.Event]
	switch level {
	case "fatal":
		b = logger.Crit()
	case "warn":
		b = logger.Warning()
	case "info":
		b = logger.Info()
	default:
		b = logger.Debug()
	}
	b = b.Str("component", component)
	for i := 0; i+1 < len(kvs); i += 2 {
		if key, ok := kvs[i].(string); ok {
			b = b.Interface(key, kvs[i+1])
		}
	}
	b.Log(message)
}
