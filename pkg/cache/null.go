package cache

import (
	"context"
	"time"
)

// NullCache discards everything: every Get is a miss, so every artifact is
// rendered fresh. It backs the --no-cache flag and the "none" backend.
type NullCache struct{}

// NewNullCache returns the discard-everything cache.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
