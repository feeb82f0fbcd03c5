package middleware

import (
	"context"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// AddData returns middleware that injects a fixed value into the request
// context under the given key, making it available to downstream
// middleware and the endpoint via protocol.DataFromContext.
//
// The value is captured at construction time and shared across requests,
// so it must be safe for concurrent reads.
func AddData[E endpoint.Endpoint](key string, value any) Middleware[E, *AddDataEndpoint[E]] {
	return func(ep E) *AddDataEndpoint[E] {
		return &AddDataEndpoint[E]{inner: ep, key: key, value: value}
	}
}

// AddDataEndpoint is the endpoint type produced by AddData.
type AddDataEndpoint[E endpoint.Endpoint] struct {
	inner E
	key   string
	value any
}

// Call implements endpoint.Endpoint.
func (e *AddDataEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	return e.inner.Call(protocol.ContextWithData(ctx, e.key, e.value), req)
}
