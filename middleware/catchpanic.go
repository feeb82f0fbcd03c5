package middleware

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// PanicHandler is called when a panic is recovered.
type PanicHandler func(ctx context.Context, req *protocol.Request, panicVal any) (*protocol.Response, error)

// CatchPanic returns middleware that catches panics from the inner
// endpoint and converts them to internal errors. The panic value is
// included in the error message for debugging.
func CatchPanic[E endpoint.Endpoint]() Middleware[E, *CatchPanicEndpoint[E]] {
	return CatchPanicWithHandler[E](defaultPanicHandler)
}

// CatchPanicWithHandler returns middleware that catches panics and calls
// the provided handler. This allows for custom panic handling such as
// logging or alerting.
func CatchPanicWithHandler[E endpoint.Endpoint](handler PanicHandler) Middleware[E, *CatchPanicEndpoint[E]] {
	return func(ep E) *CatchPanicEndpoint[E] {
		return &CatchPanicEndpoint[E]{inner: ep, handler: handler}
	}
}

// CatchPanicEndpoint is the endpoint type produced by CatchPanic.
type CatchPanicEndpoint[E endpoint.Endpoint] struct {
	inner   E
	handler PanicHandler
}

// Call implements endpoint.Endpoint.
func (e *CatchPanicEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (resp *protocol.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = e.handler(ctx, req, r)
		}
	}()
	return e.inner.Call(ctx, req)
}

// defaultPanicHandler converts a panic value to an internal error.
func defaultPanicHandler(_ context.Context, _ *protocol.Request, panicVal any) (*protocol.Response, error) {
	var msg string
	switch v := panicVal.(type) {
	case error:
		msg = fmt.Sprintf("panic: %v", v)
	case string:
		msg = fmt.Sprintf("panic: %s", v)
	default:
		msg = fmt.Sprintf("panic: %v", v)
	}
	return nil, protocol.NewInternalError(msg)
}
