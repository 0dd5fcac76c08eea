package auth

import "context"

type ctxKey int

// identityKey is the fixed property under which the call verifier exposes
// the verified username to handlers.
const identityKey ctxKey = 0

// WithIdentity returns a child context carrying the verified username.
// Only the call verifier should attach identities; handlers read them.
func WithIdentity(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, identityKey, username)
}

// IdentityFromContext returns the verified username attached to the call,
// if any. Handlers never re-derive trust; a missing identity means the
// call bypassed the verifier and must be rejected.
func IdentityFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(identityKey).(string)
	return username, ok
}
