// Package logging defines a minimal structured-logging interface used across
// the project. Implementations wrap zap (default) or slog.
package logging

import (
	"context"
	"fmt"
	"io"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "roster loaded", "path", path, "records", n)
type Logger interface {
	// Debug logs diagnostics that are only interesting when troubleshooting.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	BackendZap  = "zap"
	BackendSlog = "slog"
)

// New builds a Logger for the given backend writing to w at the given level
// ("debug", "info", "warn" or "error").
func New(backend, level string, w io.Writer) (Logger, error) {
	switch backend {
	case BackendZap, "":
		return NewZapLoggerTo(w, level)
	case BackendSlog:
		return NewSlogLoggerTo(w, level)
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}
