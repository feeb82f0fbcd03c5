package middleware

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// SizeLimitOption configures the size limit middleware.
type SizeLimitOption func(*sizeLimitConfig)

type sizeLimitConfig struct {
	logger Logger
}

// WithSizeLimitLogger sets the logger for size limit events.
func WithSizeLimitLogger(l Logger) SizeLimitOption {
	return func(o *sizeLimitConfig) {
		o.logger = l
	}
}

// SizeLimit returns middleware that rejects requests exceeding the
// specified size. The maxBytes parameter is the maximum allowed size of
// the request params in bytes.
func SizeLimit[E endpoint.Endpoint](maxBytes int64, opts ...SizeLimitOption) Middleware[E, *SizeLimitEndpoint[E]] {
	cfg := &sizeLimitConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ep E) *SizeLimitEndpoint[E] {
		return &SizeLimitEndpoint[E]{inner: ep, maxBytes: maxBytes, logger: cfg.logger}
	}
}

// SizeLimitEndpoint is the endpoint type produced by SizeLimit.
type SizeLimitEndpoint[E endpoint.Endpoint] struct {
	inner    E
	maxBytes int64
	logger   Logger
}

// Call implements endpoint.Endpoint.
func (e *SizeLimitEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	if req.Params != nil {
		size := int64(len(req.Params))
		if size > e.maxBytes {
			if e.logger != nil {
				e.logger.Warn("request size limit exceeded",
					Field{Key: "method", Value: req.Method},
					Field{Key: "size", Value: size},
					Field{Key: "max", Value: e.maxBytes},
				)
			}
			return nil, &protocol.Error{
				Code:    protocol.CodeInvalidRequest,
				Message: fmt.Sprintf("request size %d exceeds limit of %d bytes", size, e.maxBytes),
			}
		}
	}

	return e.inner.Call(ctx, req)
}

// Common size limit presets.
const (
	// KB is 1024 bytes.
	KB = 1024
	// MB is 1024 * 1024 bytes.
	MB = 1024 * 1024
)
