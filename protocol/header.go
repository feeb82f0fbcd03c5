package protocol

// Header holds multi-valued message metadata. Keys are case-sensitive;
// middleware that needs case-insensitive matching normalizes keys itself.
type Header map[string][]string

// Set replaces any existing values for key with value.
func (h Header) Set(key, value string) {
	h[key] = []string{value}
}

// Append adds value to the values already stored for key, preserving order.
func (h Header) Append(key, value string) {
	h[key] = append(h[key], value)
}

// Get returns the first value stored for key, or empty string if none.
func (h Header) Get(key string) string {
	values := h[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Values returns all values stored for key in insertion order.
// The returned slice is not a copy.
func (h Header) Values(key string) []string {
	return h[key]
}

// Del removes all values stored for key.
func (h Header) Del(key string) {
	delete(h, key)
}

// Has returns true if at least one value is stored for key.
func (h Header) Has(key string) bool {
	return len(h[key]) > 0
}

// Clone returns a deep copy of the header, or nil if h is nil.
func (h Header) Clone() Header {
	if h == nil {
		return nil
	}
	clone := make(Header, len(h))
	for k, v := range h {
		clone[k] = append([]string(nil), v...)
	}
	return clone
}

// EnsureHeader returns the response header, allocating it if needed.
// Middleware that writes response headers calls this after the inner
// endpoint returns.
func (r *Response) EnsureHeader() Header {
	if r.Header == nil {
		r.Header = make(Header)
	}
	return r.Header
}

// EnsureHeader returns the request header, allocating it if needed.
func (r *Request) EnsureHeader() Header {
	if r.Header == nil {
		r.Header = make(Header)
	}
	return r.Header
}
