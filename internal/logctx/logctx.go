// Package logctx carries structured logging context through an elicitation.
// A Handler wrapping the application's base handler attaches the session
// group to every record emitted under a context that carries one.
package logctx

import (
	"context"
	"log/slog"
)

// Handler enriches records with elicitation context stored in ctx.
type Handler struct {
	slog.Handler
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if sd, ok := ctx.Value(sessionDataKey{}).(*SessionData); ok {
		r.AddAttrs(slog.Group("elicit",
			slog.String("session_id", sd.SessionID),
			slog.String("source", sd.Source),
		))
	}
	return h.Handler.Handle(ctx, r)
}

type sessionDataKey struct{}

// SessionData identifies one top-level elicitation run.
type SessionData struct {
	SessionID string
	Source    string
}

// WithSession returns a context carrying data for Handler enrichment.
func WithSession(ctx context.Context, data *SessionData) context.Context {
	return context.WithValue(ctx, sessionDataKey{}, data)
}

type loggerKey struct{}

// WithLogger returns a context carrying the logger From will yield.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// From returns the context's logger, or slog.Default when none was set.
func From(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}
