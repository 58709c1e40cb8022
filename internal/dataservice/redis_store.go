package dataservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gridironfacts/nfl-data-service/internal/logging"
)

// Housekeeping expiry, well past any freshness window; the service still
// judges staleness from the entry timestamp.
const redisEntryExpiry = 24 * time.Hour

// RedisStore is a cache backend shared across replicas. Backend errors are
// logged and reported as misses so a Redis outage degrades to refetching,
// never to request failures.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStore constructs a RedisStore with the given key prefix.
func NewRedisStore(client *redis.Client, prefix string, logger *slog.Logger) *RedisStore {
	if prefix == "" {
		prefix = "gridiron:dashboard"
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (s *RedisStore) key(category string) string {
	return s.prefix + ":" + category
}

// Get retrieves an entry by category key.
func (s *RedisStore) Get(ctx context.Context, category string) (Entry, bool) {
	data, err := s.client.Get(ctx, s.key(category)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.Warn(s.logger, "redis cache read failed", slog.String(logging.FieldCategory, category), "err", err)
		}
		return Entry{}, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		logging.Warn(s.logger, "redis cache entry corrupt", slog.String(logging.FieldCategory, category), "err", err)
		return Entry{}, false
	}
	return entry, true
}

// Set replaces the entry for a category.
func (s *RedisStore) Set(ctx context.Context, category string, entry Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		logging.Warn(s.logger, "redis cache encode failed", slog.String(logging.FieldCategory, category), "err", err)
		return
	}
	if err := s.client.Set(ctx, s.key(category), data, redisEntryExpiry).Err(); err != nil {
		logging.Warn(s.logger, "redis cache write failed", slog.String(logging.FieldCategory, category), "err", err)
	}
}

// Clear removes all category entries immediately.
func (s *RedisStore) Clear(ctx context.Context) {
	keys := make([]string, 0, len(AllCategories))
	for _, category := range AllCategories {
		keys = append(keys, s.key(category))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		logging.Warn(s.logger, "redis cache clear failed", "err", err)
	}
}

// Keys returns the category keys currently present.
func (s *RedisStore) Keys(ctx context.Context) []string {
	keys := make([]string, 0, len(AllCategories))
	for _, category := range AllCategories {
		exists, err := s.client.Exists(ctx, s.key(category)).Result()
		if err != nil {
			logging.Warn(s.logger, "redis cache keys failed", "err", err)
			return keys
		}
		if exists > 0 {
			keys = append(keys, category)
		}
	}
	return keys
}
