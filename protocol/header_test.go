package protocol

import "testing"

func TestHeader_SetAndAppend(t *testing.T) {
	h := make(Header)

	h.Append("h1", "a")
	h.Append("h1", "b")
	if got := h.Get("h1"); got != "a" {
		t.Errorf("Get = %q, want %q", got, "a")
	}
	if values := h.Values("h1"); len(values) != 2 || values[0] != "a" || values[1] != "b" {
		t.Errorf("Values = %v, want [a b]", values)
	}

	h.Set("h1", "c")
	if values := h.Values("h1"); len(values) != 1 || values[0] != "c" {
		t.Errorf("Values after Set = %v, want [c]", values)
	}
}

func TestHeader_GetMissing(t *testing.T) {
	h := make(Header)
	if got := h.Get("nope"); got != "" {
		t.Errorf("Get = %q, want empty string", got)
	}
	if h.Has("nope") {
		t.Error("Has should be false for missing key")
	}
}

func TestHeader_Del(t *testing.T) {
	h := make(Header)
	h.Set("secret", "value")
	h.Del("secret")
	if h.Has("secret") {
		t.Error("key should be removed")
	}
}

func TestHeader_Clone(t *testing.T) {
	t.Run("nil header", func(t *testing.T) {
		var h Header
		if h.Clone() != nil {
			t.Error("cloning nil header should return nil")
		}
	})

	t.Run("deep copy", func(t *testing.T) {
		h := make(Header)
		h.Append("k", "v1")

		clone := h.Clone()
		clone.Append("k", "v2")

		if len(h.Values("k")) != 1 {
			t.Error("mutating the clone must not affect the original")
		}
	})
}

func TestEnsureHeader(t *testing.T) {
	t.Run("response", func(t *testing.T) {
		resp := &Response{}
		resp.EnsureHeader().Set("h1", "a")
		if resp.Header.Get("h1") != "a" {
			t.Error("header not allocated or value not set")
		}
	})

	t.Run("request preserves existing", func(t *testing.T) {
		req := &Request{Header: Header{"h1": {"a"}}}
		req.EnsureHeader().Append("h1", "b")
		if values := req.Header.Values("h1"); len(values) != 2 {
			t.Errorf("Values = %v, want two entries", values)
		}
	})
}
