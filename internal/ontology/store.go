package ontology

import (
	"context"
	"sync/atomic"
)

// Store publishes the current Cache snapshot to concurrent readers.
// Load builds a complete new snapshot off to the side and swaps a single
// pointer, so in-flight readers never observe a partially built cache.
type Store struct {
	cache atomic.Pointer[Cache]
}

// NewStore returns a store holding an empty snapshot, so Snapshot never
// returns nil even before the first Load.
func NewStore() *Store {
	s := &Store{}
	s.cache.Store(NewCache(nil))
	return s
}

// Load pulls the full catalog from src, builds a new snapshot and publishes
// it atomically. On failure the previous snapshot stays published and the
// error is returned for the caller to treat as fatal.
func (s *Store) Load(ctx context.Context, src Source) error {
	cat, err := src.Catalog(ctx)
	if err != nil {
		return &LoadError{Cause: err}
	}
	s.cache.Store(NewCache(cat))
	return nil
}

// Snapshot returns the currently published cache. Callers should hold the
// returned pointer for the duration of one request so the whole pipeline
// sees a single ontology version.
func (s *Store) Snapshot() *Cache {
	return s.cache.Load()
}
