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

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
	Seed  SeedConfig
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET, required"`
	// TTL bounds the exposure window of a leaked token; there is no
	// revocation mechanism, so the default stays short.
	TTL time.Duration `env:"TOKEN_TTL, default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=employee_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SeedConfig struct {
	AdminUsername string `env:"SEED_ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=password123"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
