package config

// RedisConfig enables the shared Redis cache when Addr is set; an empty Addr
// keeps the in-process memory store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis-backed cache store should be used.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func loadRedis() RedisConfig {
	return RedisConfig{
		Addr:     envOrDefault(envRedisAddr, ""),
		Password: envOrDefault(envRedisPassword, ""),
		DB:       intEnvOrDefault(envRedisDB, 0),
	}
}
