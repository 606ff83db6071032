package auth

import (
	"context"

	"github.com/isanz/inkwell-be/internal/models"
)

// Identity is the resolved caller of a request: either a verified user or
// anonymous. The zero value is anonymous.
type Identity struct {
	User *models.User
}

// Anonymous is the identity attached when no valid session is present.
var Anonymous = Identity{}

// IsAnonymous reports whether no verified user is attached.
func (i Identity) IsAnonymous() bool { return i.User == nil }

type contextKey string

const identityKey = contextKey("identity")

// WithIdentity returns a context carrying the resolved identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity attached by ResolveIdentity, or
// Anonymous when the middleware did not run.
func IdentityFromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(identityKey).(Identity); ok {
		return id
	}
	return Anonymous
}
