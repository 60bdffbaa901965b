package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	AppName    string   `env:"APP_NAME,    default=Admin Salu - Painel Administrativo"`
	AppVersion string   `env:"APP_VERSION, default=1.0.0"`
	Port       string   `env:"PORT,        default=8080"`
	Env        string   `env:"ENV,         default=development"`
	LogLevel   string   `env:"LOG_LEVEL,   default=info"`
	CronSecret string   `env:"CRON_SECRET"`
	Origins    []string `env:"ALLOWED_ORIGINS, default=http://localhost:3000,http://localhost:5173"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,         default=720h"`
	Window    time.Duration `env:"LOGIN_RATE_WINDOW, default=300s"`
	MaxTries  int           `env:"LOGIN_RATE_MAX,    default=5"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=salu_admin"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int           `env:"REDIS_DB,   default=0"`
	CacheTTL time.Duration `env:"DASHBOARD_CACHE_TTL, default=60s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
