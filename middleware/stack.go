package middleware

import (
	"time"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
)

// Box erases the output type of a middleware operating on the type-erased
// endpoint, so it can join a Boxed chain. The wrapped endpoint's behavior
// is unchanged; only its static type is widened to the interface.
func Box[O endpoint.Endpoint](m Middleware[endpoint.Endpoint, O]) Boxed {
	return func(ep endpoint.Endpoint) endpoint.Endpoint {
		return m.Transform(ep)
	}
}

// DefaultStack returns the recommended production middleware stack for the
// boxed path: panic recovery, request ID injection, and logging.
//
// Chain applies elements in declaration order, each wrapping the previous
// result, so later elements sit further out. CatchPanic is listed last to
// make it the outermost layer; RequestID wraps Logging so logged requests
// carry their ID.
func DefaultStack(logger Logger) []Boxed {
	return []Boxed{
		Box(Logging[endpoint.Endpoint](logger)),
		Box(RequestID[endpoint.Endpoint]()),
		Box(CatchPanic[endpoint.Endpoint]()),
	}
}

// DefaultStackWithTimeout returns the default stack with a timeout middleware.
func DefaultStackWithTimeout(logger Logger, timeout time.Duration) []Boxed {
	return []Boxed{
		Box(Logging[endpoint.Endpoint](logger)),
		Box(Timeout[endpoint.Endpoint](timeout)),
		Box(RequestID[endpoint.Endpoint]()),
		Box(CatchPanic[endpoint.Endpoint]()),
	}
}
