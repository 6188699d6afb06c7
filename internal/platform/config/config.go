// Package config provides configuration loading and validation for todoctl.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Storage drivers accepted in storage.driver.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds all configuration for todoctl.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Storage   StorageConfig   `koanf:"storage"`
	Publisher PublisherConfig `koanf:"publisher"`
	Output    OutputConfig    `koanf:"output"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StorageConfig selects and configures the ToDo repository.
type StorageConfig struct {
	Driver         string               `koanf:"driver"`
	DSN            string               `koanf:"dsn"`
	AutoMigrate    bool                 `koanf:"auto_migrate"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings for the SQL store.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// PublisherConfig toggles lifecycle event publishing.
type PublisherConfig struct {
	Enabled bool `koanf:"enabled"`
}

// OutputConfig holds the default CLI rendering settings.
type OutputConfig struct {
	Format string `koanf:"format"`
}
