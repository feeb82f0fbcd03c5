package middleware

import (
	"context"
	"time"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// Timeout returns middleware that enforces a request deadline.
// If the inner endpoint does not complete within the specified duration,
// the context is cancelled; whether and how the endpoint honors the
// cancellation is its own contract, which this middleware passes through.
func Timeout[E endpoint.Endpoint](d time.Duration) Middleware[E, *TimeoutEndpoint[E]] {
	return func(ep E) *TimeoutEndpoint[E] {
		return &TimeoutEndpoint[E]{inner: ep, timeout: d}
	}
}

// TimeoutEndpoint is the endpoint type produced by Timeout.
type TimeoutEndpoint[E endpoint.Endpoint] struct {
	inner   E
	timeout time.Duration
}

// Call implements endpoint.Endpoint.
func (e *TimeoutEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.inner.Call(ctx, req)
}
