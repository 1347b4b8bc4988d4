// Package catalog holds the immutable registry of algorithm records.
// A catalog is never mutated after load; reloads replace the whole snapshot.
package catalog

import (
	"errors"
	"fmt"

	"github.com/pqc-tools/pqadvise/internal/models"
)

var (
	// ErrDuplicateID indicates two records share an algorithm id.
	ErrDuplicateID = errors.New("duplicate algorithm id")

	// ErrInvalidAttribute indicates a record violates an attribute invariant.
	ErrInvalidAttribute = errors.New("invalid algorithm attribute")

	// ErrNotFound indicates the requested algorithm id is not in the catalog.
	ErrNotFound = errors.New("algorithm not found")
)

// Catalog is an immutable, insertion-ordered set of algorithm records.
type Catalog struct {
	ordered []models.Algorithm
	byID    map[string]int
}

// Load validates records and builds a catalog. Insertion order is preserved
// so downstream iteration is deterministic.
func Load(records []models.Algorithm) (*Catalog, error) {
	c := &Catalog{
		ordered: make([]models.Algorithm, 0, len(records)),
		byID:    make(map[string]int, len(records)),
	}

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidAttribute, err)
		}
		if _, exists := c.byID[rec.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
		}
		c.byID[rec.ID] = len(c.ordered)
		c.ordered = append(c.ordered, rec)
	}

	return c, nil
}

// Get returns the algorithm with the given id.
func (c *Catalog) Get(id string) (models.Algorithm, error) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Algorithm{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.ordered[idx], nil
}

// All returns the records in insertion order. The returned slice is a copy;
// callers cannot alter the catalog through it.
func (c *Catalog) All() []models.Algorithm {
	out := make([]models.Algorithm, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.ordered)
}
