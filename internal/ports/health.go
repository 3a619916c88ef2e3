package ports

import "context"

// HealthChecker reports the health of one storage dependency: a remote
// store's connection or the circuit breaker guarding it.
type HealthChecker interface {
	// Name identifies the check, e.g. "storage-redis" or
	// "storage-dynamodb-breaker".
	Name() string

	// HealthCheck returns nil when healthy. It must honor ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checkers consulted by the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns the results keyed by name.
	// A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
