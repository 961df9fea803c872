// Package identity resolves bearer tokens to caller identities.
//
// Resource services never decode tokens themselves: they hand every inbound
// token to the authentication service's validate-token endpoint and trust its
// answer. The package provides the HTTP client for that call, the Identity
// type it resolves to, and the gin middleware that wires both into a request
// pipeline.
package identity

import "context"

// Identity is the authenticated caller behind a validated bearer token.
type Identity struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// identityKey is a context key type for storing the authenticated identity.
type identityKey struct{}

// WithIdentity stores an authenticated identity in the context.
// This is called by the authentication middleware after successful validation.
func WithIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

// FromContext retrieves the authenticated identity from the context.
// Returns (identity, true) if present, or (nil, false) if no identity was set.
func FromContext(ctx context.Context) (*Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(*Identity)
	return ident, ok
}
