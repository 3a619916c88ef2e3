// Package middleware provides HTTP middleware for the board API.
//
// The server installs the stack returned by Standard, which processes
// requests in this order:
//
//	Recovery → RequestID → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler and can also be
// composed by hand with Chain.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/platform/telemetry"
)

// Middleware is the shape shared by every function in this package.
type Middleware = func(http.Handler) http.Handler

// Standard returns the server's middleware stack, outermost first. A nil
// metrics disables request metrics but keeps tracing. A non-positive
// timeout omits the Timeout middleware.
func Standard(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []Middleware {
	stack := []Middleware{
		Recovery(logger),
		RequestID(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
	if timeout > 0 {
		stack = append(stack, Timeout(timeout))
	}
	return stack
}

// Chain composes middlewares into one. The first argument is the outermost:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to Recovery(RequestID(Logging(handler))).
func Chain(middlewares ...Middleware) Middleware {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
