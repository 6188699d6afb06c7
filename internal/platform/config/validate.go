package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Storage.validate(),
		c.Output.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	var errs []error

	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverSQLite, DriverPostgres, DriverMySQL:
		// SQL drivers need a DSN and a breaker.
	default:
		return fmt.Errorf("storage.driver must be one of: memory, sqlite, postgres, mysql; got %q", s.Driver)
	}

	if s.DSN == "" {
		errs = append(errs, fmt.Errorf("storage.dsn must not be empty for driver %q", s.Driver))
	}
	if s.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("storage.circuit_breaker.max_failures must be >= 1, got %d",
			s.CircuitBreaker.MaxFailures))
	}
	if s.CircuitBreaker.Timeout <= 0 {
		errs = append(errs, errors.New("storage.circuit_breaker.timeout must be positive"))
	}
	if s.CircuitBreaker.HalfOpenLimit < 1 {
		errs = append(errs, fmt.Errorf("storage.circuit_breaker.half_open_limit must be >= 1, got %d",
			s.CircuitBreaker.HalfOpenLimit))
	}

	return errors.Join(errs...)
}

func (o *OutputConfig) validate() error {
	switch o.Format {
	case "json", "yaml", "table":
		return nil
	default:
		return fmt.Errorf("output.format must be one of: json, yaml, table; got %q", o.Format)
	}
}
