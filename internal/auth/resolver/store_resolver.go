package resolver

import (
	"context"
	"errors"

	"github.com/ewok0116/CS308-Project/internal/auth"
	"github.com/ewok0116/CS308-Project/internal/logger"
	"github.com/ewok0116/CS308-Project/internal/store"
	"github.com/ewok0116/CS308-Project/internal/users"
)

// StoreResolver prefers the role on the stored user record and falls
// back to the token's role claim. The record is the admin-managed
// source of truth; claims are a stale cache refreshed only on explicit
// role updates.
type StoreResolver struct {
	users *users.Store
}

func NewStoreResolver(users *users.Store) *StoreResolver {
	return &StoreResolver{users: users}
}

func (r *StoreResolver) Resolve(ctx context.Context, identity *auth.Identity) Resolution {
	u, err := r.users.Get(ctx, identity.UID)
	if err == nil && u.Role != "" {
		return Resolution{Role: u.Role, Source: SourceRecord}
	}

	// A store failure degrades to the claim fallback rather than
	// failing authentication.
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		logger.Warn("role lookup failed, falling back to token claim", map[string]any{
			"uid":   identity.UID,
			"error": err.Error(),
		})
	}

	if role := identity.RoleClaim(); role != "" {
		return Resolution{Role: role, Source: SourceClaim}
	}

	return Resolution{Source: SourceNone}
}
