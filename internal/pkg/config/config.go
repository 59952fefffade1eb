package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=4h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// PublicItemReads exposes GET /items and GET /item/:name without a
	// token. Defaults to false: item reads require authentication.
	PublicItemReads bool `env:"PUBLIC_ITEM_READS, default=false"`

	DB    DBConfig
	Redis RedisConfig
}

type DBConfig struct {
	DSN string `env:"DB_DSN, default=file:catalog.db?cache=shared"`
}

type RedisConfig struct {
	// Addr left empty disables Redis-backed features (login throttling).
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
