package logger

import (
	"context"
	"log/slog"
)

type scopeKey struct{}

// With stores a request-scoped logger carrying fields, layered on top of
// whatever logger ctx already holds.
func With(ctx context.Context, fields ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, scopeKey{}, From(ctx).With(fields...))
}

// Lookup returns the request-scoped logger, if any.
func Lookup(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}
	l, ok := ctx.Value(scopeKey{}).(*slog.Logger)
	return l, ok && l != nil
}

func From(ctx context.Context) *slog.Logger {
	if l, ok := Lookup(ctx); ok {
		return l
	}
	return LoggerWrapper()
}
