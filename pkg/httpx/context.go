package httpx

import "context"

// Identity is the per-request resolved principal, copied verbatim from
// verified token claims. It is never re-fetched from storage on the
// authorization path and never shared across requests.
type Identity struct {
	UserID int64
	Email  string
}

type ctxKey struct{}

func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the identity attached by AuthnMiddleware.
// ok is false on routes that never went through the middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
