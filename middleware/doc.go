// Package middleware provides type-preserving middleware composition for
// request pipelines, plus a set of production-ready middlewares.
//
// A middleware transforms an endpoint into a new endpoint, adding
// cross-cutting behavior without touching the endpoint's code. Transforms
// run once, at pipeline construction time; all request-time work happens
// inside the endpoints they produce.
//
// # Composition
//
// Middlewares compose sequentially, conditionally, or as a bounded tuple:
//
//	mw := middleware.Combine(
//	    middleware.SetHeader[endpoint.Func](middleware.AppendingHeader("h1", "a")),
//	    middleware.SetHeader[*middleware.SetHeaderEndpoint[endpoint.Func]](middleware.AppendingHeader("h2", "b")),
//	)
//	ep := middleware.Apply(base, mw)
//
// Combine(first, second) applies first's transform first, so first's
// wrapper is the innermost layer: at request time control enters second's
// wrapper, which calls first's wrapper, which calls the original endpoint.
// Post-processing therefore completes inner-to-outer, first before second.
//
// CombineIf attaches a middleware only when a flag is set, and returns a
// single concrete type for both outcomes via the either-branch endpoint:
//
//	mw := middleware.CombineIf(base, cfg.TracingEnabled, tracing)
//
// ComposeN applies a fixed-size heterogeneous sequence in declaration
// order, equivalent to repeated Combine calls.
//
// # Type-Erased Chains
//
// The generic path keeps every endpoint type statically known. When a
// dynamically-sized pipeline matters more than static typing, instantiate
// middleware at the endpoint.Endpoint interface type and fold with Chain:
//
//	chain := middleware.Chain(
//	    middleware.CatchPanic[endpoint.Endpoint](),
//	    middleware.RequestID[endpoint.Endpoint](),
//	    middleware.Logging[endpoint.Endpoint](logger),
//	)
//	handler := chain(base)
//
// # Available Middleware
//
// The package ships several built-in middlewares:
//
//   - SetHeader: appends or overrides response headers
//   - PropagateHeader: copies request headers onto the response
//   - SensitiveHeader: strips named headers from request and/or response
//   - AddData: injects a fixed value into the request context
//   - Auth: authenticates requests and attaches the caller principal
//   - CatchPanic: recovers panics and converts them to internal errors
//   - RequestID: injects unique request IDs into the context
//   - Logging: logs request details and timing
//   - Timeout: enforces request deadlines
//   - SizeLimit: rejects oversized request params
//   - RateLimit: token bucket rate limiting
//   - Tracing: OpenTelemetry spans and metrics
//
// # Custom Middleware
//
// Ad-hoc middleware lifts a plain endpoint-to-endpoint function with Make:
//
//	mw := middleware.Make(func(ep endpoint.Func) endpoint.Func {
//	    return func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
//	        req.EnsureHeader().Set("x-source", "cli")
//	        return ep(ctx, req)
//	    }
//	})
package middleware
