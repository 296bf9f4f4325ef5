package roles

import (
	"context"
	"errors"
	"fmt"

	"github.com/ewok0116/CS308-Project/internal/auth"
	"github.com/ewok0116/CS308-Project/internal/store"
	"github.com/ewok0116/CS308-Project/internal/users"
)

// Collection is the optional, informational roles collection. The
// authoritative role for authorization always lives on the user record.
const Collection = "roles"

// Service implements role administration: listing known roles, reading
// a user's stored role and writing it to both the user record and the
// identity provider's claim set.
type Service struct {
	docs   store.Store
	users  *users.Store
	claims auth.ClaimWriter
}

func NewService(docs store.Store, users *users.Store, claims auth.ClaimWriter) *Service {
	return &Service{docs: docs, users: users, claims: claims}
}

// List returns the role documents when the roles collection is
// non-empty, otherwise the distinct role values found on users.
func (s *Service) List(ctx context.Context) ([]any, error) {
	docs, err := s.docs.All(ctx, Collection)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	if len(docs) > 0 {
		out := make([]any, 0, len(docs))
		for _, doc := range docs {
			entry := map[string]any{"id": doc.ID}
			for k, v := range doc.Data {
				entry[k] = v
			}
			out = append(out, entry)
		}
		return out, nil
	}

	names, err := s.users.DistinctRoles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]any, 0, len(names))
	for _, name := range names {
		out = append(out, name)
	}

	return out, nil
}

// Get returns the stored role of a user, or "" when the record or the
// role field is absent.
func (s *Service) Get(ctx context.Context, uid string) (string, error) {
	u, err := s.users.Get(ctx, uid)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return u.Role, nil
}

// Set upserts the role onto the user record and propagates it into the
// provider's claim set so subsequently issued tokens carry it. A claim
// failure after the record write surfaces as an error; the record write
// is not rolled back.
func (s *Service) Set(ctx context.Context, uid, role string) error {
	if err := s.users.MergeRole(ctx, uid, role); err != nil {
		return fmt.Errorf("store role for %s: %w", uid, err)
	}

	if err := s.claims.SetClaims(ctx, uid, map[string]any{"role": role}); err != nil {
		return fmt.Errorf("role stored but claim propagation failed: %w", err)
	}

	return nil
}
