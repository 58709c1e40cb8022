package config

import "time"

const defaultRefreshInterval = 2 * time.Minute

// RefreshConfig controls the background cache warmer.
type RefreshConfig struct {
	Enabled  bool
	Interval Duration
}

func loadRefresh() RefreshConfig {
	return RefreshConfig{
		Enabled:  boolEnvOrDefault(envRefreshEnabled, true),
		Interval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
	}
}
