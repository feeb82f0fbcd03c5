package middleware

import (
	"context"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// PropagateHeader returns middleware that copies the named request headers
// onto the response. Headers absent from the request are left untouched.
func PropagateHeader[E endpoint.Endpoint](names ...string) Middleware[E, *PropagateHeaderEndpoint[E]] {
	return func(ep E) *PropagateHeaderEndpoint[E] {
		return &PropagateHeaderEndpoint[E]{inner: ep, names: names}
	}
}

// PropagateHeaderEndpoint is the endpoint type produced by PropagateHeader.
type PropagateHeaderEndpoint[E endpoint.Endpoint] struct {
	inner E
	names []string
}

// Call implements endpoint.Endpoint.
func (e *PropagateHeaderEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	// Values are captured before the inner call; the inner endpoint may
	// mutate the request header.
	var propagated [][]string
	for _, name := range e.names {
		propagated = append(propagated, append([]string(nil), req.Header.Values(name)...))
	}

	resp, err := e.inner.Call(ctx, req)
	if err != nil {
		return nil, err
	}

	for i, name := range e.names {
		if len(propagated[i]) == 0 {
			continue
		}
		header := resp.EnsureHeader()
		for _, value := range propagated[i] {
			header.Append(name, value)
		}
	}
	return resp, nil
}
