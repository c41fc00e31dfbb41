package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"newsbrief/internal/handler/http/requestid"

	"go.opentelemetry.io/otel/trace"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ParseLevel converts a LOG_LEVEL value into a slog level.
// Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w in the given format.
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var handler slog.Handler
	if format == FormatText {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// NewLogger creates the server logger: JSON on stdout, level from LOG_LEVEL.
func NewLogger() *slog.Logger {
	return New(os.Stdout, FormatJSON, ParseLevel(os.Getenv("LOG_LEVEL")))
}

// NewTextLogger creates a human-readable logger on stderr for CLI tools.
func NewTextLogger() *slog.Logger {
	return New(os.Stderr, FormatText, ParseLevel(os.Getenv("LOG_LEVEL")))
}

// WithRequestID returns a logger that includes the request ID from the context.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}

// WithTraceID returns a logger that includes the active span's trace ID.
func WithTraceID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return logger
	}
	return logger.With("trace_id", sc.TraceID().String())
}

// ForRequest combines WithRequestID and WithTraceID. Handlers and use cases
// call it once per request so every entry can be correlated.
func ForRequest(ctx context.Context, logger *slog.Logger) *slog.Logger {
	return WithTraceID(ctx, WithRequestID(ctx, logger))
}

// FromContext retrieves the logger from the context, or returns the default logger if not found.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const loggerContextKey contextKey = "logger"
