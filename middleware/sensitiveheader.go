package middleware

import (
	"context"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// SensitiveHeaderOption configures the SensitiveHeader middleware.
type SensitiveHeaderOption func(*sensitiveHeaderConfig)

type sensitiveHeaderConfig struct {
	names       []string
	requestOnly bool
	replyOnly   bool
}

// SensitiveRequestOnly limits stripping to request headers.
func SensitiveRequestOnly() SensitiveHeaderOption {
	return func(c *sensitiveHeaderConfig) {
		c.requestOnly = true
		c.replyOnly = false
	}
}

// SensitiveResponseOnly limits stripping to response headers.
func SensitiveResponseOnly() SensitiveHeaderOption {
	return func(c *sensitiveHeaderConfig) {
		c.replyOnly = true
		c.requestOnly = false
	}
}

// SensitiveHeaderNames adds header names to strip.
func SensitiveHeaderNames(names ...string) SensitiveHeaderOption {
	return func(c *sensitiveHeaderConfig) {
		c.names = append(c.names, names...)
	}
}

// SensitiveHeader returns middleware that removes the configured headers
// before the request reaches the inner endpoint and after the response
// leaves it. By default both directions are stripped.
func SensitiveHeader[E endpoint.Endpoint](opts ...SensitiveHeaderOption) Middleware[E, *SensitiveHeaderEndpoint[E]] {
	cfg := &sensitiveHeaderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ep E) *SensitiveHeaderEndpoint[E] {
		return &SensitiveHeaderEndpoint[E]{
			inner:        ep,
			names:        cfg.names,
			stripRequest: !cfg.replyOnly,
			stripReply:   !cfg.requestOnly,
		}
	}
}

// SensitiveHeaderEndpoint is the endpoint type produced by SensitiveHeader.
type SensitiveHeaderEndpoint[E endpoint.Endpoint] struct {
	inner        E
	names        []string
	stripRequest bool
	stripReply   bool
}

// Call implements endpoint.Endpoint.
func (e *SensitiveHeaderEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	if e.stripRequest && req.Header != nil {
		for _, name := range e.names {
			req.Header.Del(name)
		}
	}

	resp, err := e.inner.Call(ctx, req)
	if err != nil {
		return nil, err
	}

	if e.stripReply && resp.Header != nil {
		for _, name := range e.names {
			resp.Header.Del(name)
		}
	}
	return resp, nil
}
