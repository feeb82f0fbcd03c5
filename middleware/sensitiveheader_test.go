package middleware

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

func TestSensitiveHeader(t *testing.T) {
	secretResponse := endpoint.Func(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
		resp := protocol.NewResponse(req.ID, "ok")
		resp.EnsureHeader().Set("authorization", "token")
		return resp, nil
	})

	t.Run("strips both directions by default", func(t *testing.T) {
		var seenByInner string
		inner := endpoint.Func(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			seenByInner = req.Header.Get("authorization")
			resp := protocol.NewResponse(req.ID, "ok")
			resp.EnsureHeader().Set("authorization", "token")
			return resp, nil
		})

		m := SensitiveHeader[endpoint.Func](SensitiveHeaderNames("authorization"))
		ep := m.Transform(inner)

		req := &protocol.Request{Method: "test"}
		req.EnsureHeader().Set("authorization", "secret")

		resp, err := ep.Call(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seenByInner != "" {
			t.Error("request header should be stripped before the inner endpoint")
		}
		if resp.Header.Has("authorization") {
			t.Error("response header should be stripped")
		}
	})

	t.Run("request only", func(t *testing.T) {
		m := SensitiveHeader[endpoint.Func](
			SensitiveHeaderNames("authorization"),
			SensitiveRequestOnly(),
		)
		ep := m.Transform(secretResponse)

		req := &protocol.Request{Method: "test"}
		req.EnsureHeader().Set("authorization", "secret")

		resp, err := ep.Call(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Header.Has("authorization") {
			t.Error("request header should be stripped")
		}
		if !resp.Header.Has("authorization") {
			t.Error("response header should be preserved")
		}
	})

	t.Run("response only", func(t *testing.T) {
		m := SensitiveHeader[endpoint.Func](
			SensitiveHeaderNames("authorization"),
			SensitiveResponseOnly(),
		)
		ep := m.Transform(secretResponse)

		req := &protocol.Request{Method: "test"}
		req.EnsureHeader().Set("authorization", "secret")

		resp, err := ep.Call(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !req.Header.Has("authorization") {
			t.Error("request header should be preserved")
		}
		if resp.Header.Has("authorization") {
			t.Error("response header should be stripped")
		}
	})
}
