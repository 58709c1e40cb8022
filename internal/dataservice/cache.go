package dataservice

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is one cached category payload with its fetch timestamp. Freshness is
// judged by the service, not the store; stale entries stay in place until
// overwritten, they are simply not returned.
type Entry struct {
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// Store is the cache backend contract. The default implementation is an
// in-process map; a Redis-backed store can be swapped in for shared caching.
// Backend failures are treated as cache misses, never as request failures.
type Store interface {
	Get(ctx context.Context, category string) (Entry, bool)
	Set(ctx context.Context, category string, entry Entry)
	Clear(ctx context.Context)
	Keys(ctx context.Context) []string
}

// CacheStatus describes the cache contents for introspection.
type CacheStatus struct {
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}
