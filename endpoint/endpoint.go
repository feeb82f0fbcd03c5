// Package endpoint defines the endpoint capability that middleware composes
// over: an object that processes one request and yields one result or error.
//
// The Endpoint interface type doubles as the type-erased form: generic
// middleware instantiated at E = endpoint.Endpoint trades static typing for
// the flexibility of a single dynamic endpoint type, at the cost of
// interface indirection on every call.
package endpoint

import (
	"context"

	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// Endpoint processes a single request. Implementations must be safe for
// concurrent use; the composed pipeline is invoked from many in-flight
// requests at once.
type Endpoint interface {
	Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error)
}

// Func adapts a plain function to the Endpoint interface.
type Func func(ctx context.Context, req *protocol.Request) (*protocol.Response, error)

// Call implements Endpoint.
func (f Func) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	return f(ctx, req)
}
