package auth

import (
	"context"

	"famorg/internal/session"
)

type contextKey struct{}

// WithIdentity attaches the verified session identity to the context.
func WithIdentity(ctx context.Context, id session.Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request's identity, if authentication ran.
func FromContext(ctx context.Context) (session.Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(session.Identity)
	return id, ok
}

// Username returns the authenticated username, or "" when absent.
func Username(ctx context.Context) string {
	id, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return id.Username
}

// FamilyID returns the authenticated user's family, or "" when absent.
func FamilyID(ctx context.Context) string {
	id, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return id.FamilyID
}
