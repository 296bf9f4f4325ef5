package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const countersCollection = "counters"

// Firestore adapts a Firestore client to the Store port.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

func (f *Firestore) Collections(ctx context.Context) ([]string, error) {
	var names []string

	it := f.client.Collections(ctx)
	for {
		col, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list collections: %w", err)
		}
		names = append(names, col.ID)
	}

	return names, nil
}

func (f *Firestore) Documents(ctx context.Context, collection string, limit int) ([]Document, error) {
	return f.collect(f.client.Collection(collection).Limit(limit).Documents(ctx))
}

func (f *Firestore) All(ctx context.Context, collection string) ([]Document, error) {
	return f.collect(f.client.Collection(collection).Documents(ctx))
}

func (f *Firestore) Get(ctx context.Context, collection, id string) (*Document, error) {
	snap, err := f.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}

	return &Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (f *Firestore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	_, err := f.client.Collection(collection).Doc(id).Set(ctx, data)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (f *Firestore) Merge(ctx context.Context, collection, id string, data map[string]any) error {
	_, err := f.client.Collection(collection).Doc(id).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("merge %s/%s: %w", collection, id, err)
	}
	return nil
}

func (f *Firestore) FindEq(ctx context.Context, collection, field string, value any) ([]Document, error) {
	return f.collect(f.client.Collection(collection).Where(field, "==", value).Documents(ctx))
}

// NextSequence runs a read-modify-write transaction on the counter
// document so concurrent callers never observe the same value.
func (f *Firestore) NextSequence(ctx context.Context, name string, seed SeedFunc) (int64, error) {
	var next int64

	ref := f.client.Collection(countersCollection).Doc(name)

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current int64

		snap, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
			if seed != nil {
				current, err = seed(ctx)
				if err != nil {
					return fmt.Errorf("seed sequence %s: %w", name, err)
				}
			}
		case err != nil:
			return err
		default:
			v, err := snap.DataAt("value")
			if err != nil {
				return err
			}
			n, ok := v.(int64)
			if !ok {
				return fmt.Errorf("sequence %s holds non-integer value %v", name, v)
			}
			current = n
		}

		next = current + 1
		return tx.Set(ref, map[string]any{"value": next})
	})
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", name, err)
	}

	return next, nil
}

func (f *Firestore) collect(it *firestore.DocumentIterator) ([]Document, error) {
	defer it.Stop()

	var docs []Document
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate documents: %w", err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}
