package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"
)

// Firebase verifies bearer tokens and writes custom claims through the
// Firebase Auth client. It is both a TokenVerifier and a ClaimWriter.
type Firebase struct {
	client *fbauth.Client
}

func NewFirebase(client *fbauth.Client) *Firebase {
	return &Firebase{client: client}
}

func (f *Firebase) Verify(ctx context.Context, token string) (*Identity, error) {
	decoded, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return &Identity{
		UID:    decoded.UID,
		Claims: decoded.Claims,
	}, nil
}

func (f *Firebase) SetClaims(ctx context.Context, uid string, claims map[string]any) error {
	if err := f.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return fmt.Errorf("set custom claims for %s: %w", uid, err)
	}
	return nil
}
