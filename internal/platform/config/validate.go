package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Storage.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
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

	if s.Timeout <= 0 {
		errs = append(errs, errors.New("storage.timeout must be positive"))
	}

	switch s.Driver {
	case DriverMemory:
	case DriverFile:
		if s.File.Path == "" {
			errs = append(errs, errors.New("storage.file.path must not be empty for the file driver"))
		}
	case DriverSQLite, DriverPostgres:
		if s.SQL.DSN == "" {
			errs = append(errs, fmt.Errorf("storage.sql.dsn must not be empty for the %s driver", s.Driver))
		}
		if s.SQL.Table == "" {
			errs = append(errs, errors.New("storage.sql.table must not be empty"))
		}
	case DriverRedis:
		if s.Redis.Addr == "" {
			errs = append(errs, errors.New("storage.redis.addr must not be empty for the redis driver"))
		}
	case DriverDynamoDB:
		if s.DynamoDB.Table == "" {
			errs = append(errs, errors.New("storage.dynamodb.table must not be empty for the dynamodb driver"))
		}
		if s.DynamoDB.Region == "" {
			errs = append(errs, errors.New("storage.dynamodb.region must not be empty for the dynamodb driver"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"storage.driver must be one of: memory, file, sqlite, postgres, redis, dynamodb; got %q", s.Driver))
	}

	if s.Remote() {
		if s.Retry.MaxAttempts < 1 {
			errs = append(errs, fmt.Errorf("storage.retry.max_attempts must be >= 1, got %d", s.Retry.MaxAttempts))
		}
		if s.Retry.Multiplier <= 0 {
			errs = append(errs, fmt.Errorf("storage.retry.multiplier must be positive, got %f", s.Retry.Multiplier))
		}
		if s.CircuitBreaker.MaxFailures < 1 {
			errs = append(errs, fmt.Errorf("storage.circuit_breaker.max_failures must be >= 1, got %d",
				s.CircuitBreaker.MaxFailures))
		}
		if s.RateLimit.RequestsPerSecond < 0 {
			errs = append(errs, fmt.Errorf("storage.rate_limit.requests_per_second must not be negative, got %f",
				s.RateLimit.RequestsPerSecond))
		}
		if s.RateLimit.RequestsPerSecond > 0 && s.RateLimit.Burst < 1 {
			errs = append(errs, fmt.Errorf("storage.rate_limit.burst must be >= 1, got %d", s.RateLimit.Burst))
		}
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
