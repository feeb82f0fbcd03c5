package middleware

import (
	"context"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// SetHeaderOption configures the SetHeader middleware.
type SetHeaderOption func(*setHeaderConfig)

type headerAction struct {
	name     string
	value    string
	override bool
}

type setHeaderConfig struct {
	actions []headerAction
}

// AppendingHeader appends a value to the named response header, keeping
// any values already present.
func AppendingHeader(name, value string) SetHeaderOption {
	return func(c *setHeaderConfig) {
		c.actions = append(c.actions, headerAction{name: name, value: value})
	}
}

// OverridingHeader replaces all values of the named response header.
func OverridingHeader(name, value string) SetHeaderOption {
	return func(c *setHeaderConfig) {
		c.actions = append(c.actions, headerAction{name: name, value: value, override: true})
	}
}

// SetHeader returns middleware that applies the configured header actions
// to every successful response, in the order the options were given.
func SetHeader[E endpoint.Endpoint](opts ...SetHeaderOption) Middleware[E, *SetHeaderEndpoint[E]] {
	cfg := &setHeaderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ep E) *SetHeaderEndpoint[E] {
		return &SetHeaderEndpoint[E]{inner: ep, actions: cfg.actions}
	}
}

// SetHeaderEndpoint is the endpoint type produced by SetHeader.
type SetHeaderEndpoint[E endpoint.Endpoint] struct {
	inner   E
	actions []headerAction
}

// Call implements endpoint.Endpoint.
func (e *SetHeaderEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	resp, err := e.inner.Call(ctx, req)
	if err != nil {
		return nil, err
	}

	header := resp.EnsureHeader()
	for _, action := range e.actions {
		if action.override {
			header.Set(action.name, action.value)
		} else {
			header.Append(action.name, action.value)
		}
	}
	return resp, nil
}
