package config

import "time"

const (
	defaultRetryMaxAttempts = 3
	defaultRetryBackoff     = 200 * time.Millisecond
)

// RetryConfig controls the fetch client's retry decorator.
type RetryConfig struct {
	MaxAttempts int
	Backoff     Duration
}

func loadRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: intEnvOrDefault(envRetryMaxAttempts, defaultRetryMaxAttempts),
		Backoff:     durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
	}
}
