package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextPrincipalKey ctxKey = "principal"

// Principal is the authenticated caller as decoded from the session token.
// The role is re-read from the store on every authorization check, so RoleID
// here is informational only.
type Principal struct {
	UserID   int64
	Username string
	RoleID   int64
	TokenID  string
	Expires  time.Time
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(ContextPrincipalKey).(*Principal)
	return p, ok && p != nil
}

func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ContextPrincipalKey, p)
}

// UserIDFromContext returns 0 when the request is unauthenticated.
func UserIDFromContext(ctx context.Context) int64 {
	if p, ok := PrincipalFromContext(ctx); ok {
		return p.UserID
	}
	return 0
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
