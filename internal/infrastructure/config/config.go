package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Seed populates demo animals and accounts at startup when the
	// corresponding collection is empty.
	Seed bool `env:"SEED, default=true"`

	Mongo MongoConfig
	Redis RedisConfig
	Token TokenConfig

	// LegacyLoginPayload restores the original login response shape, which
	// embedded the password digest in the user object. Off by default.
	LegacyLoginPayload bool `env:"LEGACY_LOGIN_PAYLOAD, default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=paws_shelter"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type TokenConfig struct {
	// Mode selects the bearer-token scheme: "legacy" (prefix + account id,
	// wire-compatible with existing clients) or "jwt" (signed, expiring).
	Mode      string        `env:"TOKEN_MODE,   default=legacy"`
	Prefix    string        `env:"TOKEN_PREFIX, default=fake-jwt-token-"`
	JWTSecret string        `env:"JWT_SECRET"`
	TTL       time.Duration `env:"TOKEN_TTL,    default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
