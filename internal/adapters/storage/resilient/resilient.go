// Package resilient wraps a remote ports.KeyValueStore with a circuit
// breaker, a rate limiter, retry with exponential backoff, OpenTelemetry
// tracing and store metrics.
//
// Calls pass through the layers in this order:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry → Store
//
// Construction:
//
//	store := resilient.New(redisStore, "redis", &cfg.Storage, metrics, logger)
//	registry.Register(store)
package resilient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
	"github.com/jsamuelsen11/kanban-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.KeyValueStore = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store operation names used in spans, logs and metrics.
const (
	opGet = "get"
	opSet = "set"
)

// retryConfig holds the retry policy values extracted from config.RetryConfig.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Store decorates a KeyValueStore with resilience and instrumentation.
type Store struct {
	next     ports.KeyValueStore
	driver   string
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker[[]byte]
	limiter  *rate.Limiter // nil when rate limiting is disabled
	retryCfg retryConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New wraps next. The driver name labels spans, metrics and the health
// check. If metrics is nil, metric recording is skipped.
func New(next ports.KeyValueStore, driver string, cfg *config.StorageConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Store{
		next:    next,
		driver:  driver,
		timeout: cfg.Timeout,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}

	s.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "storage-" + driver,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: s.onStateChange,
	})

	if cfg.RateLimit.RequestsPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	}

	return s
}

// Get reads key through the pipeline.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	return s.execute(ctx, opGet, key, func(ctx context.Context) ([]byte, error) {
		return s.next.Get(ctx, key)
	})
}

// Set writes key through the pipeline.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.execute(ctx, opSet, key, func(ctx context.Context) ([]byte, error) {
		return nil, s.next.Set(ctx, key, value)
	})
	return err
}

// Name identifies the breaker in health reports.
func (s *Store) Name() string {
	return "storage-" + s.driver + "-breaker"
}

// HealthCheck reports the store's availability from the circuit breaker
// state. No call is made to the underlying store.
func (s *Store) HealthCheck(_ context.Context) error {
	state := s.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", s.driver)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", s.driver)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", s.driver, state)
	}
}

// Close closes the wrapped store if it supports closing.
func (s *Store) Close() error {
	if c, ok := s.next.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func (s *Store) execute(ctx context.Context, op, key string, fn func(context.Context) ([]byte, error)) ([]byte, error) {
	start := time.Now()

	out, err := s.breaker.Execute(func() ([]byte, error) {
		if err := s.waitForRateLimit(ctx); err != nil {
			return nil, err
		}

		spanCtx, span := s.startSpan(ctx, op, key)
		defer span.End()

		v, retryErr := s.doWithRetry(spanCtx, op, key, fn)
		if retryErr != nil {
			span.RecordError(retryErr)
			span.SetStatus(codes.Error, retryErr.Error())
		}
		return v, retryErr
	})

	s.recordMetrics(ctx, op, start, err)

	return out, err
}

func (s *Store) waitForRateLimit(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	return s.limiter.Wait(ctx)
}

func (s *Store) startSpan(ctx context.Context, op, key string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("storage")

	return tracer.Start(ctx, fmt.Sprintf("store %s %s", op, s.driver),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", s.driver),
			attribute.String("db.operation", op),
			attribute.String("store.key", key),
		),
	)
}

func (s *Store) onStateChange(name string, from, to gobreaker.State) {
	s.logger.Warn("circuit breaker state change",
		slog.String("breaker", name),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	if s.metrics == nil {
		return
	}
	s.metrics.StoreBreakerTransitions.Add(context.Background(), 1, metric.WithAttributes(
		telemetry.AttrStoreDriver.String(s.driver),
		telemetry.AttrBreakerState.String(to.String()),
	))
}

// recordMetrics is called outside the breaker so rejections are counted.
func (s *Store) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := telemetry.ResultSuccess
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case err != nil:
		result = telemetry.ResultError
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStoreDriver.String(s.driver),
		telemetry.AttrStoreOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
