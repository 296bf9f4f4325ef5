package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewok0116/CS308-Project/internal/auth"
	"github.com/ewok0116/CS308-Project/internal/store"
	"github.com/ewok0116/CS308-Project/internal/users"
)

// failingStore simulates an unreachable document database on reads.
type failingStore struct {
	store.Store
}

func (f *failingStore) Get(ctx context.Context, collection, id string) (*store.Document, error) {
	return nil, errors.New("store unreachable")
}

func TestRecordRoleWinsOverClaim(t *testing.T) {
	ctx := context.Background()
	docs := store.NewMemory()
	require.NoError(t, docs.Set(ctx, users.Collection, "uid-1", map[string]any{"role": "editor"}))

	r := NewStoreResolver(users.NewStore(docs))

	res := r.Resolve(ctx, &auth.Identity{
		UID:    "uid-1",
		Claims: map[string]any{"role": "viewer"},
	})

	assert.Equal(t, Resolution{Role: "editor", Source: SourceRecord}, res)
}

func TestClaimFallbackWhenRecordAbsent(t *testing.T) {
	ctx := context.Background()
	r := NewStoreResolver(users.NewStore(store.NewMemory()))

	res := r.Resolve(ctx, &auth.Identity{
		UID:    "uid-1",
		Claims: map[string]any{"role": "viewer"},
	})

	assert.Equal(t, Resolution{Role: "viewer", Source: SourceClaim}, res)
}

func TestClaimFallbackWhenRecordRoleEmpty(t *testing.T) {
	ctx := context.Background()
	docs := store.NewMemory()
	require.NoError(t, docs.Set(ctx, users.Collection, "uid-1", map[string]any{"name": "Ali"}))

	r := NewStoreResolver(users.NewStore(docs))

	res := r.Resolve(ctx, &auth.Identity{
		UID:    "uid-1",
		Claims: map[string]any{"role": "viewer"},
	})

	assert.Equal(t, Resolution{Role: "viewer", Source: SourceClaim}, res)
}

func TestStoreFailureDegradesToClaim(t *testing.T) {
	ctx := context.Background()
	r := NewStoreResolver(users.NewStore(&failingStore{Store: store.NewMemory()}))

	res := r.Resolve(ctx, &auth.Identity{
		UID:    "uid-1",
		Claims: map[string]any{"role": "viewer"},
	})

	assert.Equal(t, Resolution{Role: "viewer", Source: SourceClaim}, res)
}

func TestUnresolvedWhenNoRecordAndNoClaim(t *testing.T) {
	ctx := context.Background()
	r := NewStoreResolver(users.NewStore(store.NewMemory()))

	res := r.Resolve(ctx, &auth.Identity{UID: "uid-1"})

	assert.Equal(t, Resolution{Source: SourceNone}, res)
}

func TestNonStringRoleClaimIgnored(t *testing.T) {
	ctx := context.Background()
	r := NewStoreResolver(users.NewStore(store.NewMemory()))

	res := r.Resolve(ctx, &auth.Identity{
		UID:    "uid-1",
		Claims: map[string]any{"role": 42},
	})

	assert.Equal(t, Resolution{Source: SourceNone}, res)
}
