package logger

import (
	"context"

	"github.com/google/uuid"
)

type sessionIDKey struct{}

type commandKey struct{}

// NewSession returns a context carrying a fresh session ID.
func NewSession(ctx context.Context) context.Context {
	return WithSessionID(ctx, uuid.NewString())
}

// WithSessionID adds a session ID to the context.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// GetSessionID retrieves the session ID from the context.
// Returns the session ID and a boolean indicating whether it was found.
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey{}).(string)
	return id, ok
}

// WithCommand adds the name of the menu command being executed to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey{}, command)
}

// GetCommand retrieves the command name from the context.
func GetCommand(ctx context.Context) (string, bool) {
	command, ok := ctx.Value(commandKey{}).(string)
	return command, ok
}
