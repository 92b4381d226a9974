package httpx

import (
	"context"

	"github.com/audioscribe/audioscribe/internal/domain/model"
)

// identityKey is an unexported context key type to avoid collisions across
// packages. All handlers and middleware use the same key.
type identityKey struct{}

// Identity is the per-request authenticated identity, constructed once by the
// bearer middleware and passed explicitly through the request context.
type Identity struct {
	AccountID int64
	Email     string
}

// SetIdentityInContext returns a child context carrying the given identity.
func SetIdentityInContext(ctx context.Context, id *Identity) context.Context {
	if id == nil {
		return ctx
	}
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the request identity and whether one is present.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	if id, ok := ctx.Value(identityKey{}).(*Identity); ok && id != nil {
		return id, true
	}
	return nil, false
}

// IdentityFromAccount converts an account into a request identity.
func IdentityFromAccount(a *model.Account) *Identity {
	if a == nil {
		return nil
	}
	return &Identity{AccountID: a.ID, Email: a.Email}
}
