package cache

import (
	"context"
	"time"
)

// NullCache discards every write and reports every read as a miss, so each
// render hits the feeds directly. It backs --no-cache runs and keeps the
// feed client tests deterministic.
type NullCache struct{}

// NewNullCache returns a cache that never stores anything.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
