package auth

import "context"

// MetadataKey flags route operations that require bearer authentication.
const MetadataKey = "requireAuth"

type identityKey struct{}

// Identity is the authenticated user extracted from a verified token.
type Identity struct {
	UserID string
	Email  string
}

// ContextWithIdentity adds the authenticated identity to the context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext extracts the authenticated identity from the context.
// The zero Identity means the request was not authenticated.
func IdentityFromContext(ctx context.Context) Identity {
	if v, ok := ctx.Value(identityKey{}).(Identity); ok {
		return v
	}

	return Identity{}
}
