// Package pipeline provides type-preserving middleware composition for
// request-processing pipelines.
//
// pipeline-go lets cross-cutting behavior (header injection, panic
// isolation, tracing, rate limiting) be attached to a request handler
// without modifying the handler itself:
//   - Statically typed composition: every wrapped endpoint keeps a
//     concrete type derived from its inputs
//   - Sequential, conditional, and fixed-arity tuple composition
//   - An opt-in type-erased path for dynamically-sized chains
//   - Production-ready built-in middlewares
//
// Basic usage:
//
//	base := pipeline.EndpointFunc(func(ctx context.Context, req *pipeline.Request) (*pipeline.Response, error) {
//	    return pipeline.NewResponse(req.ID, "hello"), nil
//	})
//
//	ep := pipeline.Apply(base, pipeline.Combine(
//	    middleware.SetHeader[pipeline.EndpointFunc](middleware.AppendingHeader("h1", "a")),
//	    middleware.SetHeader[*middleware.SetHeaderEndpoint[pipeline.EndpointFunc]](middleware.AppendingHeader("h2", "b")),
//	))
//
//	resp, err := ep.Call(ctx, req)
package pipeline

import (
	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/middleware"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// Re-export core types for convenience

// Endpoint processes a single request.
type Endpoint = endpoint.Endpoint

// EndpointFunc adapts a plain function to the Endpoint interface.
type EndpointFunc = endpoint.Func

// Either is a closed two-variant union of endpoints.
type Either[A, B Endpoint] = endpoint.Either[A, B]

// Middleware transforms an endpoint of type E into an endpoint of type O.
type Middleware[E, O Endpoint] = middleware.Middleware[E, O]

// Boxed is a middleware over the type-erased endpoint.
type Boxed = middleware.Boxed

// Builder assembles boxed middleware chains fluently.
type Builder = middleware.Builder

// Message types
type Request = protocol.Request
type Response = protocol.Response
type Header = protocol.Header
type Error = protocol.Error

// Logging types
type Logger = middleware.Logger
type LogField = middleware.Field

// Response constructors re-exported for convenience.
var (
	NewResponse      = protocol.NewResponse
	NewErrorResponse = protocol.NewErrorResponse
)

// Boxed-path helpers re-exported for convenience.
var (
	Chain                   = middleware.Chain
	Use                     = middleware.Use
	DefaultStack            = middleware.DefaultStack
	DefaultStackWithTimeout = middleware.DefaultStackWithTimeout
)

// Apply transforms ep with m and returns the resulting endpoint.
func Apply[E, O Endpoint](ep E, m Middleware[E, O]) O {
	return middleware.Apply(ep, m)
}

// Combine creates a middleware applying both transforms in a fixed nesting
// order; see middleware.Combine.
func Combine[E, M, O Endpoint](first Middleware[E, M], second Middleware[M, O]) Middleware[E, O] {
	return middleware.Combine(first, second)
}

// CombineIf combines first with second only when enabled is true; see
// middleware.CombineIf.
func CombineIf[E, M, O Endpoint](first Middleware[E, M], enabled bool, second Middleware[M, O]) Middleware[E, *Either[M, O]] {
	return middleware.CombineIf(first, enabled, second)
}

// Make lifts a plain endpoint-to-endpoint function into a Middleware.
func Make[E, O Endpoint](f func(ep E) O) Middleware[E, O] {
	return middleware.Make(f)
}

// Identity returns the no-op middleware.
func Identity[E Endpoint]() Middleware[E, E] {
	return middleware.Identity[E]()
}

// Box erases the output type of a middleware operating on the type-erased
// endpoint.
func Box[O Endpoint](m Middleware[Endpoint, O]) Boxed {
	return middleware.Box(m)
}
