package config

// Environment variable names.
const (
	envPort          = "PORT"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envDataSource    = "DATA_SOURCE"
	envESPNBaseURL   = "ESPN_BASE_URL"
	envESPNAPIKey    = "ESPN_API_KEY"
	envAPITimeout    = "API_TIMEOUT"
	envUseRealData   = "USE_REAL_DATA"
	envFallback      = "FALLBACK_TO_PLACEHOLDER"
	envCacheDuration = "CACHE_DURATION"

	envCacheTTLGames     = "CACHE_TTL_GAMES"
	envCacheTTLStandings = "CACHE_TTL_STANDINGS"
	envCacheTTLLeaders   = "CACHE_TTL_LEADERS"
	envCacheTTLNews      = "CACHE_TTL_NEWS"

	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"

	envRefreshEnabled  = "REFRESH_ENABLED"
	envRefreshInterval = "REFRESH_INTERVAL"

	envAdminToken = "ADMIN_TOKEN"

	envMetricsEnabled = "METRICS_ENABLED"
	envMetricsPort    = "METRICS_PORT"
	envOtlpEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtlpInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envOtelService    = "OTEL_SERVICE_NAME"

	envRetryMaxAttempts = "RETRY_MAX_ATTEMPTS"
	envRetryBackoff     = "RETRY_BACKOFF"
)

// Defaults.
const (
	defaultPort      = "8080"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	// SourceESPN selects the live scoreboard API; SourceFixture serves the
	// built-in demo dataset.
	SourceESPN    = "espn"
	SourceFixture = "fixture"

	defaultDataSource = SourceFixture

	defaultMetricsPort = "9090"
)
