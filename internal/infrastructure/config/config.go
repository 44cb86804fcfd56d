package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BcryptCost tunes the adaptive hashing cost factor. Raising it later
	// keeps existing hashes verifiable (the blob is self-describing).
	BcryptCost int `env:"BCRYPT_COST, default=10"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// JWTConfig is the process-wide signing configuration. Secret, issuer, and
// audience have no defaults: a missing value fails at startup, never at
// request time.
type JWTConfig struct {
	Secret     string `env:"JWT_SECRET,   required"`
	Issuer     string `env:"JWT_ISSUER,   required"`
	Audience   string `env:"JWT_AUDIENCE, required"`
	TTLSeconds int    `env:"JWT_TTL_SECONDS, default=3600"`
}

// TTL returns the token lifetime as a duration.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_manager"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing required value is a startup-fatal configuration error.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if cfg.JWT.TTLSeconds <= 0 {
		return nil, fmt.Errorf("load configuration: JWT_TTL_SECONDS must be positive")
	}
	return &cfg, nil
}
