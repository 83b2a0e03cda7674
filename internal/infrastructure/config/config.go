package config

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

// DevSecret is the fallback signing secret when no environment variable
// provides one. Fine for local development, unsafe anywhere else; the
// fallback is logged as a warning at startup.
const DevSecret = "dev-secret-change-me"

type Config struct {
	Port     string `env:"PORT,      default=8000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretKey is the current variable name; LegacySecretKey is the older
	// alias still honored for deployments that have not migrated. Use
	// ResolveSecret, which applies the ordered fallback exactly once.
	SecretKey       string `env:"AUTH_SECRET_KEY"`
	LegacySecretKey string `env:"JWT_SECRET"`

	Algorithm       string `env:"AUTH_ALGORITHM,              default=HS256"`
	TokenTTLMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=60"`
	BcryptCost      int    `env:"BCRYPT_COST,                 default=10"`

	// VerifyMode selects the token verification strategy for non-auth
	// services: "local" (shared secret, in-process) or "remote"
	// (delegated to the auth service's /auth/verify endpoint).
	VerifyMode    string        `env:"TOKEN_VERIFY_MODE, default=local"`
	VerifyTimeout time.Duration `env:"VERIFY_TIMEOUT,    default=10s"`

	ProbeTimeout time.Duration `env:"HEALTH_PROBE_TIMEOUT, default=2s"`
	CacheTTL     time.Duration `env:"CACHE_TTL,            default=60s"`

	AuthServiceBase string `env:"AUTH_SERVICE_BASE, default=http://auth-service:8000"`
	UserServiceBase string `env:"USER_SERVICE_BASE, default=http://user-service:8000"`
	PostServiceBase string `env:"POST_SERVICE_BASE, default=http://post-service:8000"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=microblog"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// ResolveSecret returns the effective signing secret: AUTH_SECRET_KEY,
// then the legacy JWT_SECRET alias, then the development default. The
// chosen source is logged; the value never is.
func (c *Config) ResolveSecret(log zerolog.Logger) string {
	switch {
	case c.SecretKey != "":
		log.Debug().Str("source", "AUTH_SECRET_KEY").Msg("signing secret resolved")
		return c.SecretKey
	case c.LegacySecretKey != "":
		log.Debug().Str("source", "JWT_SECRET").Msg("signing secret resolved from legacy variable")
		return c.LegacySecretKey
	default:
		log.Warn().Msg("no signing secret configured, using development default; unsafe for production")
		return DevSecret
	}
}

// TokenTTL returns the configured token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}
