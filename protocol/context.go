package protocol

import "context"

// dataKey is the context key type for request-scoped data. Wrapping the
// user key in an unexported type avoids collisions with other packages.
type dataKey struct {
	name string
}

// dataValue boxes stored values so a stored nil stays distinguishable
// from a missing key.
type dataValue struct {
	v any
}

// ContextWithData returns a new context carrying a request-scoped value.
// Middleware uses this to pass per-request state downstream instead of
// storing it in the middleware value, which is shared across requests.
func ContextWithData(ctx context.Context, key string, value any) context.Context {
	return context.WithValue(ctx, dataKey{name: key}, dataValue{v: value})
}

// DataFromContext returns the request-scoped value stored under key.
// The second return value reports whether the key was present; a stored
// nil value reports present.
func DataFromContext(ctx context.Context, key string) (any, bool) {
	if dv, ok := ctx.Value(dataKey{name: key}).(dataValue); ok {
		return dv.v, true
	}
	return nil, false
}

// requestMetaKey is the context key for request metadata.
type requestMetaKey struct{}

// RequestMeta holds string metadata associated with a request, typically
// transport-level information surfaced to middleware and endpoints.
type RequestMeta map[string]string

// ContextWithRequestMeta returns a new context with the request metadata attached.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext returns the request metadata from the context.
// Returns nil if no metadata is present.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if meta, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return meta
	}
	return nil
}

// GetRequestMeta returns a specific metadata value from the context.
// Returns empty string if the key is not found or no metadata is present.
func GetRequestMeta(ctx context.Context, key string) string {
	meta := RequestMetaFromContext(ctx)
	if meta == nil {
		return ""
	}
	return meta[key]
}

// SetRequestMeta sets a metadata value in the context.
// If no metadata exists, a new map is created.
func SetRequestMeta(ctx context.Context, key, value string) context.Context {
	meta := RequestMetaFromContext(ctx)
	if meta == nil {
		meta = make(RequestMeta)
	} else {
		// Copy to avoid mutating metadata visible to the caller.
		newMeta := make(RequestMeta, len(meta)+1)
		for k, v := range meta {
			newMeta[k] = v
		}
		meta = newMeta
	}
	meta[key] = value
	return ContextWithRequestMeta(ctx, meta)
}
