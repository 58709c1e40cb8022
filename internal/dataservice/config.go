package dataservice

import "time"

const defaultCacheDuration = 5 * time.Minute

// Config controls the service's source selection, fallback policy, and cache
// freshness. It is read at construction and mutable afterwards only through
// UpdateConfig.
type Config struct {
	UseRealData           bool
	FallbackToPlaceholder bool
	CacheDuration         time.Duration
	// CategoryTTL optionally overrides CacheDuration per category key.
	CategoryTTL map[string]time.Duration
}

func (c Config) ttlFor(category string) time.Duration {
	if ttl, ok := c.CategoryTTL[category]; ok && ttl > 0 {
		return ttl
	}
	if c.CacheDuration > 0 {
		return c.CacheDuration
	}
	return defaultCacheDuration
}

// ConfigUpdate carries the fields to change on a running service; nil fields
// are left untouched. Changes take effect on the next call.
type ConfigUpdate struct {
	UseRealData           *bool
	FallbackToPlaceholder *bool
	CacheDuration         *time.Duration
}
