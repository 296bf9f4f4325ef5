package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-memory Store used by tests. It keeps collections in
// insertion-independent (sorted) order so assertions stay stable.
type Memory struct {
	mu        sync.RWMutex
	data      map[string]map[string]map[string]any
	sequences map[string]int64
}

func NewMemory() *Memory {
	return &Memory{
		data:      make(map[string]map[string]map[string]any),
		sequences: make(map[string]int64),
	}
}

func (m *Memory) Collections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name, docs := range m.data {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names, nil
}

func (m *Memory) Documents(ctx context.Context, collection string, limit int) ([]Document, error) {
	docs, err := m.All(ctx, collection)
	if err != nil {
		return nil, err
	}
	if len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (m *Memory) All(ctx context.Context, collection string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id := range m.data[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var docs []Document
	for _, id := range ids {
		docs = append(docs, Document{ID: id, Data: clone(m.data[collection][id])})
	}

	return docs, nil
}

func (m *Memory) Get(ctx context.Context, collection, id string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.data[collection][id]
	if !ok {
		return nil, ErrNotFound
	}

	return &Document{ID: id, Data: clone(data)}, nil
}

func (m *Memory) Set(ctx context.Context, collection, id string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[collection] == nil {
		m.data[collection] = make(map[string]map[string]any)
	}
	m.data[collection][id] = clone(data)

	return nil
}

func (m *Memory) Merge(ctx context.Context, collection, id string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[collection] == nil {
		m.data[collection] = make(map[string]map[string]any)
	}
	doc, ok := m.data[collection][id]
	if !ok {
		doc = make(map[string]any)
		m.data[collection][id] = doc
	}
	for k, v := range data {
		doc[k] = v
	}

	return nil
}

func (m *Memory) FindEq(ctx context.Context, collection, field string, value any) ([]Document, error) {
	docs, err := m.All(ctx, collection)
	if err != nil {
		return nil, err
	}

	var matched []Document
	for _, doc := range docs {
		if doc.Data[field] == value {
			matched = append(matched, doc)
		}
	}

	return matched, nil
}

func (m *Memory) NextSequence(ctx context.Context, name string, seed SeedFunc) (int64, error) {
	m.mu.RLock()
	_, ok := m.sequences[name]
	m.mu.RUnlock()

	// Seed outside the lock: seed functions read back through the store.
	if !ok && seed != nil {
		seeded, err := seed(ctx)
		if err != nil {
			return 0, err
		}
		m.mu.Lock()
		if _, raced := m.sequences[name]; !raced {
			m.sequences[name] = seeded
		}
		m.mu.Unlock()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.sequences[name] + 1
	m.sequences[name] = next

	return next, nil
}

func clone(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
