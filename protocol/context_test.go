package protocol

import (
	"context"
	"testing"
)

func TestContextWithData(t *testing.T) {
	t.Run("stores and retrieves value", func(t *testing.T) {
		ctx := ContextWithData(context.Background(), "tenant", "acme")

		value, ok := DataFromContext(ctx, "tenant")
		if !ok {
			t.Fatal("expected value to be present")
		}
		if value != "acme" {
			t.Errorf("value = %v, want %q", value, "acme")
		}
	})

	t.Run("stored nil value reports present", func(t *testing.T) {
		ctx := ContextWithData(context.Background(), "tenant", nil)

		value, ok := DataFromContext(ctx, "tenant")
		if !ok {
			t.Fatal("expected stored nil to be present")
		}
		if value != nil {
			t.Errorf("value = %v, want nil", value)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := DataFromContext(context.Background(), "tenant")
		if ok {
			t.Error("expected no value")
		}
	})

	t.Run("keys do not collide with other context values", func(t *testing.T) {
		type otherKey string
		ctx := context.WithValue(context.Background(), otherKey("tenant"), "other")

		if _, ok := DataFromContext(ctx, "tenant"); ok {
			t.Error("plain context value must not be visible as request data")
		}
	})
}

func TestRequestMeta(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		ctx := SetRequestMeta(context.Background(), "client", "cli-1")
		if got := GetRequestMeta(ctx, "client"); got != "cli-1" {
			t.Errorf("GetRequestMeta = %q, want %q", got, "cli-1")
		}
	})

	t.Run("set copies existing metadata", func(t *testing.T) {
		meta := RequestMeta{"a": "1"}
		ctx := ContextWithRequestMeta(context.Background(), meta)
		_ = SetRequestMeta(ctx, "b", "2")

		if _, ok := meta["b"]; ok {
			t.Error("SetRequestMeta must not mutate the original map")
		}
	})

	t.Run("missing metadata", func(t *testing.T) {
		if RequestMetaFromContext(context.Background()) != nil {
			t.Error("expected nil metadata")
		}
		if GetRequestMeta(context.Background(), "x") != "" {
			t.Error("expected empty value")
		}
	})
}
