// Package store persists block definitions.
//
// The in-memory backend serves tests and single-process CLI usage; the
// MongoDB backend serves server deployments. Definitions are keyed by their
// block ID.
package store

import (
	"context"

	"github.com/snapblocks/snapblocks/pkg/blockdef"
)

// Store is the persistence interface for block definitions.
type Store interface {
	// Put inserts or replaces a definition under its ID.
	Put(ctx context.Context, def *blockdef.Definition) error
	// Get returns the definition with the given ID.
	// Missing IDs yield an error with code BLOCK_NOT_FOUND.
	Get(ctx context.Context, id string) (*blockdef.Definition, error)
	// List returns all stored definitions ordered by ID.
	List(ctx context.Context) ([]*blockdef.Definition, error)
	// Delete removes the definition with the given ID.
	// Missing IDs yield an error with code BLOCK_NOT_FOUND.
	Delete(ctx context.Context, id string) error
	// Close releases backend resources.
	Close(ctx context.Context) error
}
