package server

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/gridironfacts/nfl-data-service/internal/config"
	"github.com/gridironfacts/nfl-data-service/internal/dataservice"
)

// buildStore selects the cache backend: Redis when an address is configured,
// otherwise the in-process memory store.
func buildStore(cfg config.Config, logger *slog.Logger) dataservice.Store {
	if !cfg.Redis.Enabled() {
		return dataservice.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if logger != nil {
		logger.Info("using redis cache store", slog.String("addr", cfg.Redis.Addr))
	}
	return dataservice.NewRedisStore(client, "", logger)
}
