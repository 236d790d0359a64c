// Package mirror keeps a best-effort copy of each user's notes in a
// secondary document store. Writes are debounced per record and never block
// or fail the primary mutation path.
package mirror

import "context"

// Store is a document store keyed by object path. Update fails with
// common.ErrorNotFound when the document does not exist yet, which lets the
// adapter probe update-then-insert.
type Store interface {
	Update(ctx context.Context, key string, doc []byte) error
	Insert(ctx context.Context, key string, doc []byte) error
	Delete(ctx context.Context, key string) error
}

// NopStore discards every write. It backs the adapter when mirroring is
// disabled so callers never need a nil check.
type NopStore struct{}

func (NopStore) Update(ctx context.Context, key string, doc []byte) error { return nil }
func (NopStore) Insert(ctx context.Context, key string, doc []byte) error { return nil }
func (NopStore) Delete(ctx context.Context, key string) error             { return nil }
