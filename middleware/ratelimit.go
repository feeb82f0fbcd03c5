package middleware

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// RateLimitOption configures the rate limiter.
type RateLimitOption func(*rateLimitConfig)

type rateLimitConfig struct {
	keyFunc func(*protocol.Request) string
	logger  Logger
}

// WithRateLimitKeyFunc sets a function to extract a rate limit key from
// requests. This allows per-client or per-method rate limiting.
func WithRateLimitKeyFunc(fn func(*protocol.Request) string) RateLimitOption {
	return func(o *rateLimitConfig) {
		o.keyFunc = fn
	}
}

// WithRateLimitLogger sets the logger for rate limit events.
func WithRateLimitLogger(l Logger) RateLimitOption {
	return func(o *rateLimitConfig) {
		o.logger = l
	}
}

// RateLimit returns middleware that limits request rate using a token
// bucket algorithm. The rate is specified as requests per second.
// Burst allows short bursts above the rate limit.
//
// The limiter is created once, at construction time, and shared by every
// request flowing through the produced endpoint.
func RateLimit[E endpoint.Endpoint](rate int, burst int, opts ...RateLimitOption) Middleware[E, *RateLimitEndpoint[E]] {
	cfg := &rateLimitConfig{
		keyFunc: func(_ *protocol.Request) string { return "global" }, // Global by default
	}
	for _, opt := range opts {
		opt(cfg)
	}

	limiter := ratelimit.New(&ratelimit.Config{
		Rate:     rate,
		Burst:    burst,
		Interval: time.Second,
	})

	return func(ep E) *RateLimitEndpoint[E] {
		return &RateLimitEndpoint[E]{
			inner:   ep,
			allow:   limiter.Allow,
			keyFunc: cfg.keyFunc,
			logger:  cfg.logger,
		}
	}
}

// RateLimitByMethod returns rate limiting middleware that applies
// per-method limits.
func RateLimitByMethod[E endpoint.Endpoint](rate int, burst int, opts ...RateLimitOption) Middleware[E, *RateLimitEndpoint[E]] {
	allOpts := append([]RateLimitOption{
		WithRateLimitKeyFunc(func(req *protocol.Request) string {
			return req.Method
		}),
	}, opts...)
	return RateLimit[E](rate, burst, allOpts...)
}

// RateLimitByClient returns rate limiting middleware that applies
// per-client limits. The clientIDFunc should extract a unique client
// identifier from the request.
func RateLimitByClient[E endpoint.Endpoint](rate int, burst int, clientIDFunc func(*protocol.Request) string, opts ...RateLimitOption) Middleware[E, *RateLimitEndpoint[E]] {
	allOpts := append([]RateLimitOption{
		WithRateLimitKeyFunc(clientIDFunc),
	}, opts...)
	return RateLimit[E](rate, burst, allOpts...)
}

// RateLimitEndpoint is the endpoint type produced by RateLimit.
type RateLimitEndpoint[E endpoint.Endpoint] struct {
	inner   E
	allow   func(ctx context.Context, key string) bool
	keyFunc func(*protocol.Request) string
	logger  Logger
}

// Call implements endpoint.Endpoint.
func (e *RateLimitEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	key := e.keyFunc(req)

	if !e.allow(ctx, key) {
		if e.logger != nil {
			e.logger.Warn("rate limit exceeded",
				Field{Key: "method", Value: req.Method},
				Field{Key: "key", Value: key},
			)
		}
		return nil, protocol.NewRateLimited("rate limit exceeded")
	}

	return e.inner.Call(ctx, req)
}
