// Package logger provides a thin wrapper around zerolog.Logger with
// convenience constructors and context-aware helpers used throughout
// faith-dive.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info,
// Warn, Error, Fatal, ...) is available directly. Application code passes
// *Logger by pointer and obtains request-scoped loggers via FromContext or
// FromRequest.
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
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger for the given role label (e.g.
// "server", "client"). Every entry carries a "role" field, a timestamp and
// a "func" caller field holding the fully-qualified function name. Output
// goes to stdout.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger is like NewLogger but writes to a log file next to the
// executable, keeping stdout free for the terminal UI. Falls back to
// stdout when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "faithdive.log")
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logFile = os.Stdout
	}

	logger := zerolog.New(logFile).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver. The child can be enriched with extra context fields without
// affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the request-scoped logger attached to the request
// context by the trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the logger stored in ctx. If none was attached,
// zerolog returns its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
