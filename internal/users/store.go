package users

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ewok0116/CS308-Project/internal/store"
)

// Collection is the users collection name in the document database.
const Collection = "users"

const sequenceName = "users"

// Store provides user-record access on top of the document-store port.
type Store struct {
	docs store.Store
}

func NewStore(docs store.Store) *Store {
	return &Store{docs: docs}
}

// Get reads the user document with the given id.
// Returns store.ErrNotFound when absent.
func (s *Store) Get(ctx context.Context, id string) (*User, error) {
	doc, err := s.docs.Get(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	return fromDocument(*doc), nil
}

// FindByEmail returns the user whose email exactly matches.
// Email is unique, so at most one document is expected; the first match
// wins if the invariant was violated out of band.
func (s *Store) FindByEmail(ctx context.Context, email string) (*User, error) {
	docs, err := s.docs.FindEq(ctx, Collection, "email", email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if len(docs) == 0 {
		return nil, store.ErrNotFound
	}
	return fromDocument(docs[0]), nil
}

func (s *Store) All(ctx context.Context) ([]*User, error) {
	docs, err := s.docs.All(ctx, Collection)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]*User, 0, len(docs))
	for _, doc := range docs {
		out = append(out, fromDocument(doc))
	}

	return out, nil
}

// Create allocates the next sequential numeric id and persists the
// record under its stringified form. The id fields of u are filled in.
func (s *Store) Create(ctx context.Context, u *User) error {
	id, err := s.docs.NextSequence(ctx, sequenceName, s.maxUserID)
	if err != nil {
		return fmt.Errorf("allocate user id: %w", err)
	}

	u.UserID = id
	u.ID = strconv.FormatInt(id, 10)

	if err := s.docs.Set(ctx, Collection, u.ID, u.data()); err != nil {
		return fmt.Errorf("create user %s: %w", u.ID, err)
	}

	return nil
}

// MergeRole upserts the role field onto the user document, creating the
// document when absent.
func (s *Store) MergeRole(ctx context.Context, id, role string) error {
	return s.docs.Merge(ctx, Collection, id, map[string]any{"role": role})
}

// DistinctRoles returns the deduplicated set of non-empty role values
// across all users. Order is not significant.
func (s *Store) DistinctRoles(ctx context.Context) ([]string, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var roles []string
	for _, u := range all {
		if u.Role == "" {
			continue
		}
		if _, ok := seen[u.Role]; ok {
			continue
		}
		seen[u.Role] = struct{}{}
		roles = append(roles, u.Role)
	}

	return roles, nil
}

// maxUserID seeds the user-id sequence from data that predates the
// counter document.
func (s *Store) maxUserID(ctx context.Context) (int64, error) {
	all, err := s.All(ctx)
	if err != nil {
		return 0, err
	}

	var max int64
	for _, u := range all {
		if u.UserID > max {
			max = u.UserID
		}
	}

	return max, nil
}
