package config

const (
	defaultServerPort = 8080

	defaultSQLMaxOpenConns = 4

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":                          DriverFile,
		"storage.namespace":                       "",
		"storage.timeout":                         "5s",
		"storage.file.path":                       "kanban.json",
		"storage.sql.dsn":                         "",
		"storage.sql.table":                       "kv_store",
		"storage.sql.max_open_conns":              defaultSQLMaxOpenConns,
		"storage.redis.addr":                      "localhost:6379",
		"storage.redis.password":                  "",
		"storage.redis.db":                        0,
		"storage.redis.dial_timeout":              "5s",
		"storage.redis.read_timeout":              "3s",
		"storage.redis.write_timeout":             "3s",
		"storage.dynamodb.table":                  "kanban-board",
		"storage.dynamodb.region":                 "us-east-1",
		"storage.dynamodb.endpoint":               "",
		"storage.retry.max_attempts":              defaultRetryMaxAttempts,
		"storage.retry.initial_interval":          "100ms",
		"storage.retry.max_interval":              "2s",
		"storage.retry.multiplier":                defaultRetryMultiplier,
		"storage.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.circuit_breaker.timeout":         "30s",
		"storage.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"storage.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"storage.rate_limit.burst":                defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "kanban-board",
	}
}
