package resilient

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry runs fn up to maxAttempts times with exponential backoff and
// ±25% jitter. Each attempt is bounded by the store timeout when one is set.
func (s *Store) doWithRetry(ctx context.Context, op, key string, fn func(context.Context) ([]byte, error)) ([]byte, error) {
	if s.retryCfg.maxAttempts <= 0 {
		return nil, fmt.Errorf("resilient: maxAttempts must be >= 1, got %d", s.retryCfg.maxAttempts)
	}

	var lastErr error

	for attempt := range s.retryCfg.maxAttempts {
		if attempt > 0 {
			if err := s.waitForRetry(ctx, op, key, attempt, lastErr); err != nil {
				return nil, err
			}
		}

		v, err := s.attempt(ctx, fn)
		if err == nil {
			return v, nil
		}

		lastErr = err
		if !isRetryable(ctx, err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func (s *Store) attempt(ctx context.Context, fn func(context.Context) ([]byte, error)) ([]byte, error) {
	if s.timeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return fn(ctx)
}

// waitForRetry logs the retry at WARN level and waits for the backoff delay
// or context cancellation.
func (s *Store) waitForRetry(ctx context.Context, op, key string, attempt int, lastErr error) error {
	delay := backoff(attempt, s.retryCfg)

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying store operation",
		slog.String("operation", "store."+op),
		slog.String("driver", s.driver),
		slog.String("key", key),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", s.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// backoff calculates the delay for a retry attempt using exponential backoff
// with ±25% jitter. Attempt 1 is the first retry.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a failed attempt should be retried. Once the
// caller's context is done nothing is retried; a per-attempt timeout is.
func isRetryable(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}
