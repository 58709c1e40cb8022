// Package dataservice orchestrates fetching, normalization, caching, and
// fallback for the four dashboard categories. It is the single point that
// decides whether a failure is absorbed with placeholder data or surfaced.
package dataservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gridironfacts/nfl-data-service/internal/adapter"
	domaingames "github.com/gridironfacts/nfl-data-service/internal/domain/games"
	domainleaders "github.com/gridironfacts/nfl-data-service/internal/domain/leaders"
	domainnews "github.com/gridironfacts/nfl-data-service/internal/domain/news"
	domainstandings "github.com/gridironfacts/nfl-data-service/internal/domain/standings"
	"github.com/gridironfacts/nfl-data-service/internal/logging"
	"github.com/gridironfacts/nfl-data-service/internal/metrics"
	"github.com/gridironfacts/nfl-data-service/internal/providers"
)

// Service coordinates the fetch client, the adapter, and the cache for every
// dashboard category.
type Service struct {
	source   providers.Source
	fallback providers.Source
	store    Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	mu  sync.RWMutex
	cfg Config
}

// New constructs a Service with the given real source, fallback source, and
// cache store.
func New(cfg Config, source, fallback providers.Source, store Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Service{
		source:   source,
		fallback: fallback,
		store:    store,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
		cfg:      cfg,
	}
}

// Games returns normalized games, served from cache when fresh.
func (s *Service) Games(ctx context.Context) ([]domaingames.Game, error) {
	return getCategory(ctx, s, CategoryGames,
		func(ctx context.Context) ([]domaingames.Game, error) {
			raw, err := s.source.FetchGames(ctx)
			if err != nil {
				return nil, err
			}
			if len(raw) == 0 {
				return nil, errEmptyPayload
			}
			return adapter.TransformGames(raw)
		},
		func(ctx context.Context) ([]domaingames.Game, error) {
			raw, err := s.fallback.FetchGames(ctx)
			if err != nil {
				return nil, err
			}
			return adapter.TransformGames(raw)
		})
}

// Standings returns normalized division standings, served from cache when fresh.
func (s *Service) Standings(ctx context.Context) ([]domainstandings.DivisionStanding, error) {
	return getCategory(ctx, s, CategoryStandings,
		func(ctx context.Context) ([]domainstandings.DivisionStanding, error) {
			raw, err := s.source.FetchStandings(ctx)
			if err != nil {
				return nil, err
			}
			if len(raw) == 0 {
				return nil, errEmptyPayload
			}
			return adapter.TransformStandings(raw)
		},
		func(ctx context.Context) ([]domainstandings.DivisionStanding, error) {
			raw, err := s.fallback.FetchStandings(ctx)
			if err != nil {
				return nil, err
			}
			return adapter.TransformStandings(raw)
		})
}

// Leaders returns normalized stat leaders, served from cache when fresh.
func (s *Service) Leaders(ctx context.Context) ([]domainleaders.StatLeader, error) {
	return getCategory(ctx, s, CategoryLeaders,
		func(ctx context.Context) ([]domainleaders.StatLeader, error) {
			raw, err := s.source.FetchLeaders(ctx)
			if err != nil {
				return nil, err
			}
			if len(raw) == 0 {
				return nil, errEmptyPayload
			}
			return adapter.TransformLeaders(raw)
		},
		func(ctx context.Context) ([]domainleaders.StatLeader, error) {
			raw, err := s.fallback.FetchLeaders(ctx)
			if err != nil {
				return nil, err
			}
			return adapter.TransformLeaders(raw)
		})
}

// News returns normalized news articles, served from cache when fresh.
func (s *Service) News(ctx context.Context) ([]domainnews.Article, error) {
	return getCategory(ctx, s, CategoryNews,
		func(ctx context.Context) ([]domainnews.Article, error) {
			raw, err := s.source.FetchNews(ctx)
			if err != nil {
				return nil, err
			}
			if len(raw) == 0 {
				return nil, errEmptyPayload
			}
			return adapter.TransformNews(raw)
		},
		func(ctx context.Context) ([]domainnews.Article, error) {
			raw, err := s.fallback.FetchNews(ctx)
			if err != nil {
				return nil, err
			}
			return adapter.TransformNews(raw)
		})
}

// getCategory implements the shared miss-then-store sequence: fresh cache hit,
// otherwise fetch + transform + cache, otherwise fallback policy. Failure
// results are never cached, so the next call retries the real source.
func getCategory[T any](ctx context.Context, s *Service, category string, fetch, fallback func(context.Context) (T, error)) (T, error) {
	var zero T
	cfg := s.Config()

	if !cfg.UseRealData {
		return fallback(ctx)
	}

	if payload, ok := lookupCache[T](ctx, s, category, cfg.ttlFor(category)); ok {
		s.metrics.RecordCacheHit(category)
		return payload, nil
	}
	s.metrics.RecordCacheMiss(category)

	payload, err := fetch(ctx)
	if err == nil {
		storeCache(ctx, s, category, payload)
		logging.Info(s.logger, "category fetched",
			slog.String(logging.FieldCategory, category),
			slog.String(logging.FieldSource, "upstream"))
		return payload, nil
	}

	logging.Warn(s.logger, "category fetch failed",
		slog.String(logging.FieldCategory, category), "err", err)

	if !cfg.FallbackToPlaceholder {
		return zero, err
	}

	s.metrics.RecordFallback(category)
	logging.Info(s.logger, "serving placeholder data",
		slog.String(logging.FieldCategory, category))
	return fallback(ctx)
}

func lookupCache[T any](ctx context.Context, s *Service, category string, ttl time.Duration) (T, bool) {
	var zero T
	entry, ok := s.store.Get(ctx, category)
	if !ok {
		return zero, false
	}
	if s.now().Sub(entry.FetchedAt) >= ttl {
		return zero, false
	}

	var payload T
	if err := json.Unmarshal(entry.Payload, &payload); err != nil {
		logging.Warn(s.logger, "cache entry corrupt",
			slog.String(logging.FieldCategory, category), "err", err)
		return zero, false
	}
	return payload, true
}

func storeCache[T any](ctx context.Context, s *Service, category string, payload T) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Warn(s.logger, "cache encode failed",
			slog.String(logging.FieldCategory, category), "err", err)
		return
	}
	s.store.Set(ctx, category, Entry{Payload: data, FetchedAt: s.now()})
}

// ClearCache removes all cached entries immediately.
func (s *Service) ClearCache(ctx context.Context) {
	s.store.Clear(ctx)
	logging.Info(s.logger, "cache cleared")
}

// CacheStatus reports the entry count and category keys present.
func (s *Service) CacheStatus(ctx context.Context) CacheStatus {
	keys := s.store.Keys(ctx)
	return CacheStatus{
		Size: len(keys),
		Keys: keys,
	}
}

// Config returns a copy of the current configuration.
func (s *Service) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// UpdateConfig applies the non-nil fields of update. Existing cache entries
// are not invalidated; changes take effect on the next call.
func (s *Service) UpdateConfig(update ConfigUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.UseRealData != nil {
		s.cfg.UseRealData = *update.UseRealData
	}
	if update.FallbackToPlaceholder != nil {
		s.cfg.FallbackToPlaceholder = *update.FallbackToPlaceholder
	}
	if update.CacheDuration != nil {
		s.cfg.CacheDuration = *update.CacheDuration
	}

	logging.Info(s.logger, "data service config updated",
		"use_real_data", s.cfg.UseRealData,
		"fallback_to_placeholder", s.cfg.FallbackToPlaceholder,
		"cache_duration", s.cfg.CacheDuration.String())
}
