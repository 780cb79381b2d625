package httpx

import "context"

// Identity is the authenticated caller, decoded from a verified bearer
// token. It is attached to the request context by AuthnMiddleware and read
// back by handlers through IdentityFromContext; handlers never touch raw
// claims.
type Identity struct {
	UserID string
	Email  string
}

type identityKey struct{}

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
