package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/kanban-board/internal/platform/health"
	"github.com/jsamuelsen11/kanban-board/mocks"
)

type probe struct {
	name string
	err  error
}

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestRegistry_CheckAll(t *testing.T) {
	t.Parallel()

	errRefused := errors.New("dial tcp 127.0.0.1:6379: connection refused")
	errThrottled := errors.New("ProvisionedThroughputExceededException")

	tests := []struct {
		name    string
		checks []probe
		want   map[string]error
	}{
		{
			name: "no backends registered",
			want: map[string]error{},
		},
		{
			name: "every backend reachable",
			checks: []probe{{"storage-sqlite", nil}, {"storage-redis", nil}},
			want: map[string]error{"storage-sqlite": nil, "storage-redis": nil},
		},
		{
			name: "one backend down",
			checks: []probe{{"storage-file", nil}, {"storage-redis", errRefused}},
			want: map[string]error{"storage-file": nil, "storage-redis": errRefused},
		},
		{
			name: "duplicate name keeps last registered",
			checks: []probe{{"storage-dynamodb", nil}, {"storage-dynamodb", errThrottled}},
			want: map[string]error{"storage-dynamodb": errThrottled},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checks {
				r.Register(checker(t, c.name, c.err))
			}

			got := r.CheckAll(context.Background())
			if got == nil {
				t.Fatal("CheckAll() = nil map")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("CheckAll() returned %d results, want %d: %v", len(got), len(tt.want), got)
			}
			for name, wantErr := range tt.want {
				gotErr, ok := got[name]
				if !ok {
					t.Errorf("missing result for %q", name)
					continue
				}
				if !errors.Is(gotErr, wantErr) {
					t.Errorf("%s = %v, want %v", name, gotErr, wantErr)
				}
			}
		})
	}
}

func TestRegistry_CheckContext(t *testing.T) {
	t.Parallel()

	t.Run("caller cancellation reaches the check", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return("storage-postgres")
		c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() != nil
		})).Return(context.Canceled)

		r := health.New()
		r.Register(c)

		if got := r.CheckAll(ctx)["storage-postgres"]; !errors.Is(got, context.Canceled) {
			t.Errorf("storage-postgres = %v, want context.Canceled", got)
		}
	})

	t.Run("check timeout sets a deadline", func(t *testing.T) {
		t.Parallel()

		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return("storage-dynamodb")
		c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()
			return ok && time.Until(deadline) <= time.Second
		})).Return(nil)

		r := health.New(health.WithCheckTimeout(time.Second))
		r.Register(c)

		if got := r.CheckAll(context.Background())["storage-dynamodb"]; got != nil {
			t.Errorf("storage-dynamodb = %v, want nil", got)
		}
	})
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 40 {
		if i%2 == 0 {
			c := mocks.NewMockHealthChecker(t)
			c.EXPECT().Name().Return("storage-memory").Maybe()
			c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
			wg.Go(func() { r.Register(c) })
			continue
		}
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()

	if !health.Healthy(r.CheckAll(context.Background())) {
		t.Error("registry unhealthy after concurrent registration")
	}
}

func TestHealthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results map[string]error
		want    bool
	}{
		{name: "nothing registered", results: nil, want: true},
		{name: "all reachable", results: map[string]error{"storage-file": nil, "storage-redis": nil}, want: true},
		{name: "redis down", results: map[string]error{"storage-file": nil, "storage-redis": errors.New("down")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := health.Healthy(tt.results); got != tt.want {
				t.Errorf("Healthy() = %v, want %v", got, tt.want)
			}
		})
	}
}
