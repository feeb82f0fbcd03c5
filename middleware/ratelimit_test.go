package middleware_test

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/middleware"
	"github.com/felixgeelhaar/pipeline-go/protocol"
	"github.com/felixgeelhaar/pipeline-go/testutil"
)

func TestRateLimit(t *testing.T) {
	t.Run("allows requests within limit", func(t *testing.T) {
		base := testutil.NewRecordingEndpoint("ok")
		ep := middleware.RateLimit[endpoint.Endpoint](10, 10).Transform(base)

		for i := 0; i < 5; i++ {
			resp, err := ep.Call(context.Background(), testutil.NewRequest("test"))
			if err != nil {
				t.Fatalf("request %d: unexpected error: %v", i, err)
			}
			if resp == nil {
				t.Fatalf("request %d: expected response", i)
			}
		}
		if base.Calls() != 5 {
			t.Errorf("Calls = %d, want 5", base.Calls())
		}
	})

	t.Run("rejects requests exceeding limit", func(t *testing.T) {
		base := testutil.NewRecordingEndpoint("ok")
		ep := middleware.RateLimit[endpoint.Endpoint](1, 1).Transform(base)

		if _, err := ep.Call(context.Background(), testutil.NewRequest("test")); err != nil {
			t.Fatalf("first request failed: %v", err)
		}

		_, err := ep.Call(context.Background(), testutil.NewRequest("test"))
		if err == nil {
			t.Fatal("expected rate limit error")
		}

		var protoErr *protocol.Error
		if !errors.As(err, &protoErr) || protoErr.Code != protocol.CodeRateLimited {
			t.Errorf("err = %v, want rate limited error", err)
		}
		if base.Calls() != 1 {
			t.Errorf("Calls = %d, want 1", base.Calls())
		}
	})

	t.Run("per-method limits are independent", func(t *testing.T) {
		base := testutil.NewRecordingEndpoint("ok")
		ep := middleware.RateLimitByMethod[endpoint.Endpoint](1, 1).Transform(base)

		if _, err := ep.Call(context.Background(), testutil.NewRequest("method/a")); err != nil {
			t.Fatalf("method/a failed: %v", err)
		}
		if _, err := ep.Call(context.Background(), testutil.NewRequest("method/b")); err != nil {
			t.Fatalf("method/b should have its own bucket: %v", err)
		}
		if _, err := ep.Call(context.Background(), testutil.NewRequest("method/a")); err == nil {
			t.Fatal("second method/a request should be limited")
		}
	})

	t.Run("per-client limits use the client ID function", func(t *testing.T) {
		base := testutil.NewRecordingEndpoint("ok")
		ep := middleware.RateLimitByClient[endpoint.Endpoint](1, 1, func(req *protocol.Request) string {
			return req.Header.Get("client")
		}).Transform(base)

		reqA := testutil.NewRequest("test")
		reqA.EnsureHeader().Set("client", "a")
		reqB := testutil.NewRequest("test")
		reqB.EnsureHeader().Set("client", "b")

		if _, err := ep.Call(context.Background(), reqA); err != nil {
			t.Fatalf("client a failed: %v", err)
		}
		if _, err := ep.Call(context.Background(), reqB); err != nil {
			t.Fatalf("client b should have its own bucket: %v", err)
		}
		if _, err := ep.Call(context.Background(), reqA); err == nil {
			t.Fatal("second client a request should be limited")
		}
	})

	t.Run("logs rejected requests", func(t *testing.T) {
		logger := testutil.NewCaptureLogger()
		base := testutil.NewRecordingEndpoint("ok")
		ep := middleware.RateLimit[endpoint.Endpoint](1, 1, middleware.WithRateLimitLogger(logger)).Transform(base)

		_, _ = ep.Call(context.Background(), testutil.NewRequest("test"))
		_, _ = ep.Call(context.Background(), testutil.NewRequest("test"))

		entries := logger.Entries()
		if len(entries) != 1 || entries[0].Level != "warn" {
			t.Errorf("entries = %v, want one warn entry", entries)
		}
	})
}
