package middleware

import "github.com/felixgeelhaar/pipeline-go/endpoint"

// Middleware transforms an endpoint of type E into an endpoint of type O.
// A middleware is a pure, construction-time mapping: it must not perform
// request-time work, and the value it returns carries all the behavior.
//
// Middleware values hold only construction-time configuration and are
// shared by every request flowing through the endpoints they produce, so
// they must never accumulate per-request state; that belongs in the
// request context (see protocol.ContextWithData).
type Middleware[E, O endpoint.Endpoint] func(ep E) O

// Transform applies the middleware to an endpoint. It is called once per
// attachment, at pipeline construction time, and cannot fail.
func (m Middleware[E, O]) Transform(ep E) O {
	return m(ep)
}

// Make lifts a plain endpoint-to-endpoint function into a Middleware.
// Useful for ad-hoc one-off middleware where a named constructor would be
// overkill; any configuration lives in what the closure captures.
func Make[E, O endpoint.Endpoint](f func(ep E) O) Middleware[E, O] {
	return f
}

// Identity returns the no-op middleware: transforming an endpoint returns
// it unchanged. It is the algebraic identity for composition.
func Identity[E endpoint.Endpoint]() Middleware[E, E] {
	return func(ep E) E { return ep }
}

// Apply transforms ep with m and returns the resulting endpoint.
func Apply[E, O endpoint.Endpoint](ep E, m Middleware[E, O]) O {
	return m.Transform(ep)
}
