package config

import "time"

const defaultCacheDuration = 5 * time.Minute

// CacheConfig controls freshness windows and the fallback policy.
type CacheConfig struct {
	Duration              Duration
	FallbackToPlaceholder bool
	// Per-category overrides; zero means use Duration.
	GamesTTL     Duration
	StandingsTTL Duration
	LeadersTTL   Duration
	NewsTTL      Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Duration:              durationEnvOrDefault(envCacheDuration, defaultCacheDuration),
		FallbackToPlaceholder: boolEnvOrDefault(envFallback, true),
		GamesTTL:              durationEnvOrDefault(envCacheTTLGames, 0),
		StandingsTTL:          durationEnvOrDefault(envCacheTTLStandings, 0),
		LeadersTTL:            durationEnvOrDefault(envCacheTTLLeaders, 0),
		NewsTTL:               durationEnvOrDefault(envCacheTTLNews, 0),
	}
}
