package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsEnabled, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtlpEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "nfl-data-service"),
		OtlpInsecure: boolEnvOrDefault(envOtlpInsecure, true),
	}
}
