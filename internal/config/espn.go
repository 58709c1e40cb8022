package config

import "time"

const (
	defaultESPNBaseURL = "https://site.api.espn.com/apis"
	defaultAPITimeout  = 10 * time.Second
)

// ESPNConfig controls how we talk to the scoreboard API.
type ESPNConfig struct {
	BaseURL string
	APIKey  string
	Timeout Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
		APIKey:  envOrDefault(envESPNAPIKey, ""),
		Timeout: durationEnvOrDefault(envAPITimeout, defaultAPITimeout),
	}
}
