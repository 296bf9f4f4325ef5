package auth

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned when the identity provider rejects a
// bearer token (expired, malformed, wrong signature, revoked).
var ErrInvalidToken = errors.New("invalid auth token")

// TokenVerifier verifies a bearer token against the identity provider.
// Implementations return identity facts only and must not perform user
// lookup, role resolution, or authorization.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// ClaimWriter replaces the custom claim set attached to a subject, so
// that subsequently issued tokens carry it.
type ClaimWriter interface {
	SetClaims(ctx context.Context, uid string, claims map[string]any) error
}
