package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetMerge(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "users", "1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "users", "1", map[string]any{"name": "Ali", "role": "admin"}))

	doc, err := m.Get(ctx, "users", "1")
	require.NoError(t, err)
	assert.Equal(t, "Ali", doc.Data["name"])

	// merge keeps unnamed fields
	require.NoError(t, m.Merge(ctx, "users", "1", map[string]any{"role": "editor"}))
	doc, err = m.Get(ctx, "users", "1")
	require.NoError(t, err)
	assert.Equal(t, "Ali", doc.Data["name"])
	assert.Equal(t, "editor", doc.Data["role"])

	// merge creates when absent
	require.NoError(t, m.Merge(ctx, "users", "2", map[string]any{"role": "viewer"}))
	doc, err = m.Get(ctx, "users", "2")
	require.NoError(t, err)
	assert.Equal(t, "viewer", doc.Data["role"])
}

func TestMemoryFindEq(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "users", "1", map[string]any{"email": "ali@example.com"}))
	require.NoError(t, m.Set(ctx, "users", "2", map[string]any{"email": "ayse@example.com"}))

	docs, err := m.FindEq(ctx, "users", "email", "ali@example.com")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "1", docs[0].ID)

	// exact match only
	docs, err = m.FindEq(ctx, "users", "email", "Ali@example.com")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryDocumentsLimit(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("%02d", i)
		require.NoError(t, m.Set(ctx, "products", id, map[string]any{"n": id}))
	}

	docs, err := m.Documents(ctx, "products", 20)
	require.NoError(t, err)
	assert.Len(t, docs, 20)
}

func TestMemoryNextSequence(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	seedCalls := 0
	seed := func(ctx context.Context) (int64, error) {
		seedCalls++
		return 5, nil
	}

	n, err := m.NextSequence(ctx, "users", seed)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	n, err = m.NextSequence(ctx, "users", seed)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	// seed runs at most once per sequence
	assert.Equal(t, 1, seedCalls)

	n, err = m.NextSequence(ctx, "orders", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryCollections(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "users", "1", map[string]any{"a": 1}))
	require.NoError(t, m.Set(ctx, "products", "1", map[string]any{"a": 1}))

	names, err := m.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"products", "users"}, names)
}
