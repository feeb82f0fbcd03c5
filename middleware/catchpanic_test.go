package middleware

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

func TestCatchPanic(t *testing.T) {
	t.Run("passes through normal responses", func(t *testing.T) {
		ep := CatchPanic[endpoint.Func]().Transform(textEndpoint("success"))

		resp, err := ep.Call(context.Background(), &protocol.Request{Method: "test"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp == nil {
			t.Fatal("expected response")
		}
	})

	t.Run("passes through errors", func(t *testing.T) {
		expectedErr := errors.New("endpoint error")
		failing := endpoint.Func(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			return nil, expectedErr
		})

		ep := CatchPanic[endpoint.Func]().Transform(failing)
		_, err := ep.Call(context.Background(), &protocol.Request{Method: "test"})

		if !errors.Is(err, expectedErr) {
			t.Errorf("error = %v, want %v", err, expectedErr)
		}
	})

	t.Run("catches panic with string", func(t *testing.T) {
		panicking := endpoint.Func(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			panic("something went wrong")
		})

		ep := CatchPanic[endpoint.Func]().Transform(panicking)
		_, err := ep.Call(context.Background(), &protocol.Request{Method: "test"})

		if err == nil {
			t.Fatal("expected error from panic")
		}

		var protoErr *protocol.Error
		if !errors.As(err, &protoErr) {
			t.Fatalf("expected protocol.Error, got %T", err)
		}
		if protoErr.Code != protocol.CodeInternalError {
			t.Errorf("error code = %d, want %d", protoErr.Code, protocol.CodeInternalError)
		}
		if !strings.Contains(protoErr.Message, "something went wrong") {
			t.Errorf("message = %q, want panic value included", protoErr.Message)
		}
	})

	t.Run("catches panic with error", func(t *testing.T) {
		panicking := endpoint.Func(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			panic(errors.New("panic error"))
		})

		ep := CatchPanic[endpoint.Func]().Transform(panicking)
		_, err := ep.Call(context.Background(), &protocol.Request{Method: "test"})

		var protoErr *protocol.Error
		if !errors.As(err, &protoErr) {
			t.Fatalf("expected protocol.Error, got %T", err)
		}
		if !strings.Contains(protoErr.Message, "panic error") {
			t.Errorf("message = %q, want panic value included", protoErr.Message)
		}
	})

	t.Run("custom handler receives panic value", func(t *testing.T) {
		var captured any
		handler := func(ctx context.Context, req *protocol.Request, panicVal any) (*protocol.Response, error) {
			captured = panicVal
			return protocol.NewResponse(req.ID, "recovered"), nil
		}

		panicking := endpoint.Func(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			panic(42)
		})

		ep := CatchPanicWithHandler[endpoint.Func](handler).Transform(panicking)
		resp, err := ep.Call(context.Background(), &protocol.Request{Method: "test"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Result != "recovered" {
			t.Errorf("Result = %v, want %q", resp.Result, "recovered")
		}
		if captured != 42 {
			t.Errorf("captured = %v, want 42", captured)
		}
	})
}
