package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

func TestTimeout(t *testing.T) {
	t.Run("allows fast requests", func(t *testing.T) {
		ep := Timeout[endpoint.Func](time.Second).Transform(textEndpoint("ok"))

		resp, err := ep.Call(context.Background(), &protocol.Request{Method: "test"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Result != "ok" {
			t.Errorf("Result = %v, want %q", resp.Result, "ok")
		}
	})

	t.Run("cancels slow requests", func(t *testing.T) {
		slow := endpoint.Func(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			select {
			case <-time.After(time.Second):
				return protocol.NewResponse(req.ID, "too late"), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})

		ep := Timeout[endpoint.Func](10 * time.Millisecond).Transform(slow)

		_, err := ep.Call(context.Background(), &protocol.Request{Method: "test"})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("err = %v, want %v", err, context.DeadlineExceeded)
		}
	})

	t.Run("propagates the cancellation outcome unchanged", func(t *testing.T) {
		ignoring := endpoint.Func(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			// Endpoint chooses not to honor the deadline; the middleware
			// must not substitute its own outcome.
			return protocol.NewResponse(req.ID, "done"), nil
		})

		ep := Timeout[endpoint.Func](time.Nanosecond).Transform(ignoring)

		resp, err := ep.Call(context.Background(), &protocol.Request{Method: "test"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Result != "done" {
			t.Errorf("Result = %v, want %q", resp.Result, "done")
		}
	})
}
