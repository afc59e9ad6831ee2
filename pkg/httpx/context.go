package httpx

import "context"

type ctxKey struct{}

// Identity is the authenticated caller, attached to the request context by
// Authenticate.
type Identity struct {
	AccountID string
	Email     string
}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the caller identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok && id.AccountID != ""
}
