package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const requestIDKey contextKey = "requestID"

// RequestID returns middleware that injects a unique request ID into the
// context. If a request ID already exists in the context, it is preserved.
func RequestID[E endpoint.Endpoint]() Middleware[E, *RequestIDEndpoint[E]] {
	return RequestIDWithGenerator[E](generateID)
}

// RequestIDWithGenerator returns middleware that uses a custom ID generator.
func RequestIDWithGenerator[E endpoint.Endpoint](generator func() string) Middleware[E, *RequestIDEndpoint[E]] {
	return func(ep E) *RequestIDEndpoint[E] {
		return &RequestIDEndpoint[E]{inner: ep, generator: generator}
	}
}

// RequestIDEndpoint is the endpoint type produced by RequestID.
type RequestIDEndpoint[E endpoint.Endpoint] struct {
	inner     E
	generator func() string
}

// Call implements endpoint.Endpoint.
func (e *RequestIDEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	if existing := RequestIDFromContext(ctx); existing != "" {
		return e.inner.Call(ctx, req)
	}
	return e.inner.Call(ContextWithRequestID(ctx, e.generator()), req)
}

// RequestIDFromContext returns the request ID from the context, or empty
// string if not set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ContextWithRequestID returns a new context with the request ID set.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// generateID generates a random request ID.
// Uses crypto/rand for better uniqueness than time-based IDs.
func generateID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
