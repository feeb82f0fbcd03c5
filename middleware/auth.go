package middleware

import (
	"context"
	"strings"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// Principal represents an authenticated caller.
type Principal struct {
	// ID is a unique identifier for the caller (e.g., user ID, API key ID).
	ID string
	// Name is a human-readable name for the caller.
	Name string
	// Metadata contains additional caller information.
	Metadata map[string]any
}

// principalContextKey is the context key for storing the principal.
type principalContextKey struct{}

// PrincipalFromContext returns the authenticated principal from the context.
// Returns nil if no principal is present.
func PrincipalFromContext(ctx context.Context) *Principal {
	if p, ok := ctx.Value(principalContextKey{}).(*Principal); ok {
		return p
	}
	return nil
}

// ContextWithPrincipal returns a new context with the principal attached.
func ContextWithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

// AuthOption configures the authentication middleware.
type AuthOption func(*authConfig)

type authConfig struct {
	logger       Logger
	skipMethods  map[string]bool
	errorMessage string
}

// WithAuthLogger sets the logger for auth events.
func WithAuthLogger(l Logger) AuthOption {
	return func(c *authConfig) {
		c.logger = l
	}
}

// WithAuthSkipMethods specifies methods that don't require authentication.
func WithAuthSkipMethods(methods ...string) AuthOption {
	return func(c *authConfig) {
		for _, m := range methods {
			c.skipMethods[m] = true
		}
	}
}

// WithAuthErrorMessage sets a custom error message for auth failures.
func WithAuthErrorMessage(msg string) AuthOption {
	return func(c *authConfig) {
		c.errorMessage = msg
	}
}

// Authenticator is a function that validates credentials and returns a
// principal. It should return a principal if authentication succeeds, or
// nil with an error if it fails. Returning nil without an error also
// rejects the request.
type Authenticator func(ctx context.Context, req *protocol.Request) (*Principal, error)

// Auth returns middleware that authenticates requests using the provided
// authenticator. If authentication fails, the request is rejected with an
// unauthorized error; on success the principal is attached to the context
// for downstream middleware and the endpoint.
func Auth[E endpoint.Endpoint](authenticator Authenticator, opts ...AuthOption) Middleware[E, *AuthEndpoint[E]] {
	cfg := &authConfig{
		skipMethods:  make(map[string]bool),
		errorMessage: "authentication required",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ep E) *AuthEndpoint[E] {
		return &AuthEndpoint[E]{
			inner:        ep,
			authenticate: authenticator,
			skipMethods:  cfg.skipMethods,
			errorMessage: cfg.errorMessage,
			logger:       cfg.logger,
		}
	}
}

// AuthEndpoint is the endpoint type produced by Auth.
type AuthEndpoint[E endpoint.Endpoint] struct {
	inner        E
	authenticate Authenticator
	skipMethods  map[string]bool
	errorMessage string
	logger       Logger
}

// Call implements endpoint.Endpoint.
func (e *AuthEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	if e.skipMethods[req.Method] {
		return e.inner.Call(ctx, req)
	}

	principal, err := e.authenticate(ctx, req)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("authentication failed",
				Field{Key: "method", Value: req.Method},
				Field{Key: "error", Value: err.Error()},
			)
		}
		return nil, protocol.NewUnauthorized(e.errorMessage)
	}

	if principal == nil {
		if e.logger != nil {
			e.logger.Warn("authentication failed: no principal",
				Field{Key: "method", Value: req.Method},
			)
		}
		return nil, protocol.NewUnauthorized(e.errorMessage)
	}

	if e.logger != nil {
		e.logger.Debug("authenticated",
			Field{Key: "method", Value: req.Method},
			Field{Key: "principal", Value: principal.ID},
		)
	}

	return e.inner.Call(ContextWithPrincipal(ctx, principal), req)
}

// APIKeyAuthenticator creates an authenticator that validates API keys
// carried in the named request header. The keyValidator function should
// return the principal for a valid key, or nil for invalid.
func APIKeyAuthenticator(headerName string, keyValidator func(key string) *Principal) Authenticator {
	return func(ctx context.Context, req *protocol.Request) (*Principal, error) {
		key := req.Header.Get(headerName)
		if key == "" {
			key = req.Header.Get(strings.ToLower(headerName))
		}
		if key == "" {
			// Transports that surface credentials out of band stash
			// them in request metadata instead of headers.
			key = protocol.GetRequestMeta(ctx, headerName)
		}
		if key == "" {
			return nil, nil
		}

		return keyValidator(key), nil
	}
}

// BearerTokenAuthenticator creates an authenticator that validates bearer
// tokens from the Authorization request header. The tokenValidator
// function should return the principal for a valid token, or nil for
// invalid.
func BearerTokenAuthenticator(tokenValidator func(token string) *Principal) Authenticator {
	return func(ctx context.Context, req *protocol.Request) (*Principal, error) {
		auth := req.Header.Get("Authorization")
		if auth == "" {
			auth = req.Header.Get("authorization")
		}
		if auth == "" {
			auth = protocol.GetRequestMeta(ctx, "Authorization")
		}
		if auth == "" {
			return nil, nil
		}

		// Parse "Bearer <token>"
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			return nil, nil
		}

		token := strings.TrimPrefix(auth, prefix)
		if token == "" {
			return nil, nil
		}

		return tokenValidator(token), nil
	}
}

// StaticAPIKeys creates a simple key validator from a map of key -> principal.
func StaticAPIKeys(keys map[string]*Principal) func(string) *Principal {
	return func(key string) *Principal {
		return keys[key]
	}
}

// StaticTokens creates a simple token validator from a map of token -> principal.
func StaticTokens(tokens map[string]*Principal) func(string) *Principal {
	return func(token string) *Principal {
		return tokens[token]
	}
}

// ChainAuthenticators chains multiple authenticators, returning the first
// successful principal. An error from any authenticator stops the chain.
func ChainAuthenticators(authenticators ...Authenticator) Authenticator {
	return func(ctx context.Context, req *protocol.Request) (*Principal, error) {
		for _, auth := range authenticators {
			principal, err := auth(ctx, req)
			if err != nil {
				return nil, err
			}
			if principal != nil {
				return principal, nil
			}
		}
		return nil, nil
	}
}
