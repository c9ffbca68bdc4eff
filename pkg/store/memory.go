package store

import (
	"context"
	"sort"
	"sync"

	"github.com/snapblocks/snapblocks/pkg/blockdef"
	"github.com/snapblocks/snapblocks/pkg/errors"
)

// MemoryStore is a map-backed store for tests and single-process usage.
type MemoryStore struct {
	mu   sync.RWMutex
	defs map[string]*blockdef.Definition
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{defs: make(map[string]*blockdef.Definition)}
}

// Put inserts or replaces a definition under its ID.
func (s *MemoryStore) Put(ctx context.Context, def *blockdef.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defs[def.ID] = def
	return nil
}

// Get returns the definition with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*blockdef.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.defs[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeBlockNotFound, "block %q not found", id)
	}
	return def, nil
}

// List returns all stored definitions ordered by ID.
func (s *MemoryStore) List(ctx context.Context) ([]*blockdef.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	defs := make([]*blockdef.Definition, 0, len(s.defs))
	for _, def := range s.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs, nil
}

// Delete removes the definition with the given ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.defs[id]; !ok {
		return errors.New(errors.ErrCodeBlockNotFound, "block %q not found", id)
	}
	delete(s.defs, id)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
