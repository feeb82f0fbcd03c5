package middleware

import "github.com/felixgeelhaar/pipeline-go/endpoint"

// Boxed is a middleware over the type-erased endpoint. It is the opt-in
// dynamic path: pipelines of arbitrary length with a single middleware
// type, at the cost of interface indirection on every call. Any generic
// middleware in this package instantiated at endpoint.Endpoint is a Boxed.
type Boxed = Middleware[endpoint.Endpoint, endpoint.Endpoint]

// Chain composes a dynamically-sized sequence of boxed middlewares into a
// single middleware. Like the ComposeN family, elements apply in
// declaration order: Chain(m1, m2, m3) transforms the base endpoint with
// m1 first, so m3's wrapper is outermost at request time.
// Chain() is the identity middleware.
func Chain(middlewares ...Boxed) Boxed {
	return func(ep endpoint.Endpoint) endpoint.Endpoint {
		for _, m := range middlewares {
			ep = m.Transform(ep)
		}
		return ep
	}
}

// Builder provides a fluent API for assembling boxed middleware chains.
type Builder struct {
	middlewares []Boxed
}

// Use creates a new chain builder starting with the given middlewares.
func Use(middlewares ...Boxed) *Builder {
	return &Builder{
		middlewares: middlewares,
	}
}

// Append adds middlewares to the chain and returns the updated builder.
func (b *Builder) Append(middlewares ...Boxed) *Builder {
	b.middlewares = append(b.middlewares, middlewares...)
	return b
}

// Then applies the assembled chain to an endpoint and returns the wrapped
// endpoint.
func (b *Builder) Then(ep endpoint.Endpoint) endpoint.Endpoint {
	return Chain(b.middlewares...).Transform(ep)
}

// ThenFunc applies the assembled chain to an endpoint function.
func (b *Builder) ThenFunc(fn endpoint.Func) endpoint.Endpoint {
	return b.Then(fn)
}
