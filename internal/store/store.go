package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a document id has no document behind it.
var ErrNotFound = errors.New("document not found")

// Document is a schemaless record read from the document database.
type Document struct {
	ID   string
	Data map[string]any
}

// SeedFunc produces the initial value for a sequence that does not
// exist yet. It runs at most once per sequence.
type SeedFunc func(ctx context.Context) (int64, error)

// Store is the narrow port onto the managed document database.
// Implementations return identity facts only and make no auth or
// validation decisions.
type Store interface {
	// Collections lists the names of all top-level collections.
	Collections(ctx context.Context) ([]string, error)

	// Documents reads up to limit documents from a collection.
	Documents(ctx context.Context, collection string, limit int) ([]Document, error)

	// All reads every document in a collection.
	All(ctx context.Context, collection string) ([]Document, error)

	// Get reads a single document by id. Returns ErrNotFound when absent.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Set writes a document, replacing any existing content.
	Set(ctx context.Context, collection, id string, data map[string]any) error

	// Merge upserts the given fields into a document, creating it when
	// absent and leaving unnamed fields untouched.
	Merge(ctx context.Context, collection, id string, data map[string]any) error

	// FindEq returns all documents whose field equals value.
	FindEq(ctx context.Context, collection, field string, value any) ([]Document, error)

	// NextSequence atomically increments and returns the named counter.
	// A missing counter is initialized from seed before the first
	// increment, so the first returned value is seed+1.
	NextSequence(ctx context.Context, name string, seed SeedFunc) (int64, error)
}
