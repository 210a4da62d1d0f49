package config

import "time"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"                    envDefault:"localhost"`
	Port     int    `env:"PORT"                    envDefault:"5432"`
	User     string `env:"USER"                    envDefault:"gigwire"`
	Password string `env:"PASSWORD"                envDefault:"gigwire"`
	Name     string `env:"NAME"                    envDefault:"gigwire"`
	SSLMode  string `env:"SSL_MODE"                envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
}

// CacheConfig contains cache configuration (Redis-based).
type CacheConfig struct {
	// ActiveProfileTTL bounds how stale the cached active-profile pointer can
	// get before the durable source is consulted again.
	ActiveProfileTTL time.Duration `env:"CACHE_ACTIVE_PROFILE_TTL" envDefault:"5m"`
}

// Sanitize applies guardrails to cache configuration.
func (c *CacheConfig) Sanitize() {
	if c.ActiveProfileTTL <= 0 {
		c.ActiveProfileTTL = 5 * time.Minute
	}
}
