// Package config loads the service's runtime configuration from environment
// variables.
package config

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	LogLevel   string
	LogFormat  string
	DataSource string
	AdminToken string
	ESPN       ESPNConfig
	Cache      CacheConfig
	Redis      RedisConfig
	Refresh    RefreshConfig
	Retry      RetryConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		LogLevel:   envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:  envOrDefault(envLogFormat, defaultLogFormat),
		DataSource: resolveDataSource(),
		AdminToken: envOrDefault(envAdminToken, ""),
		ESPN:       loadESPN(),
		Cache:      loadCache(),
		Redis:      loadRedis(),
		Refresh:    loadRefresh(),
		Retry:      loadRetry(),
		Metrics:    loadMetrics(),
	}
}

// resolveDataSource honors an explicit DATA_SOURCE, falling back to the
// USE_REAL_DATA toggle kept for compatibility with older deployments.
func resolveDataSource() string {
	if src := envOrDefault(envDataSource, ""); src != "" {
		return src
	}
	if boolEnvOrDefault(envUseRealData, false) {
		return SourceESPN
	}
	return defaultDataSource
}

// UseRealData reports whether the configured source hits the live API.
func (c Config) UseRealData() bool {
	return c.DataSource == SourceESPN
}
