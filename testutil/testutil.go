// Package testutil provides testing utilities for pipeline middleware.
//
// This package helps developers write tests for their own middleware by
// providing recording endpoints and a capturing logger.
//
// Example usage:
//
//	func TestMyMiddleware(t *testing.T) {
//	    base := testutil.NewRecordingEndpoint("ok")
//	    ep := middleware.Apply[endpoint.Endpoint](base, myMiddleware)
//
//	    resp, err := ep.Call(context.Background(), testutil.NewRequest("test"))
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    if base.Calls() != 1 {
//	        t.Errorf("Calls = %d, want 1", base.Calls())
//	    }
//	    _ = resp
//	}
package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/felixgeelhaar/pipeline-go/middleware"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// RecordingEndpoint is an endpoint that records the requests it receives
// and returns a canned result. It is safe for concurrent use.
type RecordingEndpoint struct {
	mu       sync.Mutex
	requests []*protocol.Request
	contexts []context.Context
	result   any
	err      error
}

// NewRecordingEndpoint creates an endpoint returning the given result.
func NewRecordingEndpoint(result any) *RecordingEndpoint {
	return &RecordingEndpoint{result: result}
}

// NewFailingEndpoint creates an endpoint returning the given error.
func NewFailingEndpoint(err error) *RecordingEndpoint {
	return &RecordingEndpoint{err: err}
}

// Call implements endpoint.Endpoint.
func (e *RecordingEndpoint) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	e.mu.Lock()
	e.requests = append(e.requests, req)
	e.contexts = append(e.contexts, ctx)
	e.mu.Unlock()

	if e.err != nil {
		return nil, e.err
	}
	return protocol.NewResponse(req.ID, e.result), nil
}

// Calls returns the number of requests received.
func (e *RecordingEndpoint) Calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.requests)
}

// LastRequest returns the most recent request, or nil if none.
func (e *RecordingEndpoint) LastRequest() *protocol.Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.requests) == 0 {
		return nil
	}
	return e.requests[len(e.requests)-1]
}

// LastContext returns the context of the most recent call, or nil if none.
func (e *RecordingEndpoint) LastContext() context.Context {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.contexts) == 0 {
		return nil
	}
	return e.contexts[len(e.contexts)-1]
}

// NewRequest creates a request with the given method.
func NewRequest(method string) *protocol.Request {
	return &protocol.Request{
		JSONRPC: protocol.JSONRPCVersion,
		ID:      json.RawMessage(`1`),
		Method:  method,
	}
}

// NewRequestWithParams creates a request with the given method and raw params.
func NewRequestWithParams(method string, params string) *protocol.Request {
	req := NewRequest(method)
	req.Params = json.RawMessage(params)
	return req
}

// CaptureLogger is a middleware.Logger that records log entries.
// It is safe for concurrent use.
type CaptureLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry is a single captured log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  []middleware.Field
}

// NewCaptureLogger creates an empty capture logger.
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{}
}

func (l *CaptureLogger) log(level, msg string, fields []middleware.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: msg, Fields: fields})
}

// Info implements middleware.Logger.
func (l *CaptureLogger) Info(msg string, fields ...middleware.Field) { l.log("info", msg, fields) }

// Error implements middleware.Logger.
func (l *CaptureLogger) Error(msg string, fields ...middleware.Field) { l.log("error", msg, fields) }

// Debug implements middleware.Logger.
func (l *CaptureLogger) Debug(msg string, fields ...middleware.Field) { l.log("debug", msg, fields) }

// Warn implements middleware.Logger.
func (l *CaptureLogger) Warn(msg string, fields ...middleware.Field) { l.log("warn", msg, fields) }

// Entries returns a copy of the captured entries in order.
func (l *CaptureLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), l.entries...)
}

// Field returns the value of the named field in the given entry, or nil.
func (e LogEntry) Field(key string) any {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}
