package logger

import (
	"context"
	"log/slog"
)

// ContextHandler is a wrapper around slog.Handler that adds context information.
type ContextHandler struct {
	slog.Handler
}

// NewContextHandler creates a new ContextHandler.
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{
		Handler: handler,
	}
}

// Enabled reports whether the handler records at the given level.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.Handler.Enabled(ctx, level)
}

// Handle processes a log record and adds context information.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if sessionID, ok := GetSessionID(ctx); ok {
		r.AddAttrs(slog.String("session_id", sessionID))
	}
	if command, ok := GetCommand(ctx); ok {
		r.AddAttrs(slog.String("command", command))
	}
	return h.Handler.Handle(ctx, r)
}

// WithAttrs returns a new ContextHandler with the given attributes added.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{
		Handler: h.Handler.WithAttrs(attrs),
	}
}

// WithGroup returns a new ContextHandler with the given group added.
func (h *ContextHandler) WithGroup(group string) slog.Handler {
	return &ContextHandler{
		Handler: h.Handler.WithGroup(group),
	}
}
