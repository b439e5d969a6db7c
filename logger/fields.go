package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
const (
	FieldSession   = "session"
	FieldTransport = "transport"
	FieldRemote    = "remote"
	FieldURI       = "uri"
	FieldLanguage  = "language"
	FieldCount     = "count"
	FieldError     = "error"
	FieldAddress   = "address"
	FieldFile      = "file"
)

type contextKey string

const sessionKey contextKey = "logger_session"

// WithSession adds an LSP session ID to the context for logging
func WithSession(ctx context.Context, session string) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	if session, ok := ctx.Value(sessionKey).(string); ok && session != "" {
		return []interface{}{FieldSession, session}
	}
	return nil
}

// ComponentLogger returns a named logger for a specific component.
//
//	registry := completion.NewRegistry(logger.ComponentLogger("completion"))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
