package catalog

import (
	"sync/atomic"

	"github.com/pqc-tools/pqadvise/internal/models"
)

// Store publishes catalog snapshots atomically. Readers always observe a
// complete catalog, either the old one or the new one, never a partial mix.
// There is no partial-update operation; Replace swaps the whole snapshot.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store holding the given initial snapshot.
func NewStore(initial *Catalog) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Snapshot returns the current catalog. The result stays valid and immutable
// even if Replace runs concurrently.
func (s *Store) Snapshot() *Catalog {
	return s.current.Load()
}

// Replace publishes a new catalog wholesale.
func (s *Store) Replace(next *Catalog) {
	s.current.Store(next)
}

// Reload validates and loads records, then publishes the result. On error
// the previous snapshot stays in place and remains visible to readers.
func (s *Store) Reload(records []models.Algorithm) error {
	next, err := Load(records)
	if err != nil {
		return err
	}
	s.current.Store(next)
	return nil
}
