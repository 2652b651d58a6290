// Package logger provides a thin wrapper around zerolog.Logger with
// convenience constructors and context-aware helpers used throughout
// meshdrive.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "desktop", "mobile").
//
// The logger is configured with:
//   - global log level set to Debug;
//   - a "role" field identifying the emitting component;
//   - a "ts" timestamp on every entry;
//   - a "func" caller field recording the fully-qualified function name.
//
// Output is written to os.Stdout in JSON format.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewFileLogger constructs a *Logger that appends JSON entries to a "logs"
// file inside dir, creating the directory if needed. Used by the mobile app
// whose stdout is not generally visible. Falls back to stdout if the file
// cannot be opened.
func NewFileLogger(role, dir string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	var out *os.File
	if err := os.MkdirAll(dir, 0o755); err == nil {
		logPath := filepath.Join(dir, "logs")
		if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			out = f
		}
	}
	if out == nil {
		out = os.Stdout
	}

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
