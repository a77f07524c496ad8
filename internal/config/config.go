package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Server configuration
type ServerConfig struct {
	Port            string        `yaml:"port" env:"PORT" env-default:"5000"`
	Host            string        `yaml:"host" env:"HOST"`
	GinMode         string        `yaml:"gin_mode" env:"GIN_MODE" env-default:"release"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// MongoDB configuration. When URI is empty it is assembled from User,
// Password and Host as an Atlas SRV connection string.
type MongoConfig struct {
	URI      string        `yaml:"uri" env:"MONGO_URI"`
	User     string        `yaml:"user" env:"DB_USER"`
	Password string        `yaml:"password" env:"DB_PASS"`
	Host     string        `yaml:"host" env:"MONGO_HOST" env-default:"localhost:27017"`
	Database string        `yaml:"database" env:"MONGO_DB" env-default:"buildingDb"`
	Timeout  time.Duration `yaml:"timeout" env:"MONGO_TIMEOUT" env-default:"10s"`
}

// Stripe configuration
type StripeConfig struct {
	SecretKey string `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
}

// Logging configuration
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Rate limit configuration. RPS <= 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"0"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"20"`
}

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Stripe    StripeConfig    `yaml:"stripe"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Load reads configuration from the file named by CONFIG_PATH (yaml or
// .env) when set, otherwise from the environment alone. Environment
// variables always override file values.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = cfg.Mongo.buildURI()
	}
	return &cfg, nil
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (m *MongoConfig) buildURI() string {
	if m.User == "" {
		return "mongodb://" + m.Host
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(m.User), url.QueryEscape(m.Password), m.Host)
}
