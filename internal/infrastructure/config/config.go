package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Service   ServiceConfig
	Distance  DistanceConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// ServiceConfig holds service identity and build metadata.
type ServiceConfig struct {
	Name        string `envconfig:"SERVICE_NAME" default:"otel-demo"`
	Namespace   string `envconfig:"SERVICE_NAMESPACE" default:"otel-demo"`
	Environment string `envconfig:"ENVIRONMENT" default:"homelab"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
	BuildNumber string `envconfig:"BUILD_NUMBER" default:"0"`
	BuildDate   string `envconfig:"BUILD_DATE" default:"unknown"`
}

// DistanceConfig holds distance worker connection configuration.
// Endpoint is the gRPC address; DownloadPort is the worker's plain-HTTP
// port used by the CSV download proxy.
type DistanceConfig struct {
	Endpoint       string `envconfig:"DISTANCE_SERVICE_ENDPOINT" default:"localhost:50051"`
	TimeoutSeconds int    `envconfig:"DISTANCE_SERVICE_TIMEOUT" default:"30"`
	DownloadPort   int    `envconfig:"DISTANCE_DOWNLOAD_PORT" default:"8080"`
}

// DatabaseConfig holds PostgreSQL/PgBouncer configuration.
// User and Password are required only when the database endpoints are used.
type DatabaseConfig struct {
	Host           string `envconfig:"PGBOUNCER_HOST" default:"192.168.1.175"`
	Port           int    `envconfig:"PGBOUNCER_PORT" default:"6432"`
	Name           string `envconfig:"POSTGRES_DB" default:"owntracks"`
	User           string `envconfig:"POSTGRES_USER" default:""`
	Password       string `envconfig:"POSTGRES_PASSWORD" default:""`
	PoolMin        int    `envconfig:"DB_POOL_MIN" default:"1"`
	PoolMax        int    `envconfig:"DB_POOL_MAX" default:"5"`
	ConnectTimeout int    `envconfig:"DB_CONNECT_TIMEOUT" default:"5"`
}

// StorageConfig holds sandboxed file storage configuration.
type StorageConfig struct {
	DataDir string `envconfig:"DATA_DIR" default:"/data"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
		Service: ServiceConfig{
			Name:        "otel-demo",
			Namespace:   "otel-demo",
			Environment: "homelab",
			Version:     "1.0.0",
			BuildNumber: "0",
			BuildDate:   "unknown",
		},
		Distance: DistanceConfig{
			Endpoint:       "localhost:50051",
			TimeoutSeconds: 30,
			DownloadPort:   8080,
		},
		Database: DatabaseConfig{
			Host:           "192.168.1.175",
			Port:           6432,
			Name:           "owntracks",
			PoolMin:        1,
			PoolMax:        5,
			ConnectTimeout: 5,
		},
		Storage: StorageConfig{
			DataDir: "/data",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}

// DatabaseConfigured reports whether database credentials are present.
// The database endpoints stay disabled without them.
func (c *Config) DatabaseConfigured() bool {
	return c.Database.User != "" && c.Database.Password != ""
}
