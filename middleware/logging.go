package middleware

import (
	"context"
	"time"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// Logger is the interface for structured logging.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a new Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logging returns middleware that logs request details.
// Successful requests are logged at info level, errors at error level.
func Logging[E endpoint.Endpoint](logger Logger) Middleware[E, *LoggingEndpoint[E]] {
	return func(ep E) *LoggingEndpoint[E] {
		return &LoggingEndpoint[E]{inner: ep, logger: logger}
	}
}

// LoggingEndpoint is the endpoint type produced by Logging.
type LoggingEndpoint[E endpoint.Endpoint] struct {
	inner  E
	logger Logger
}

// Call implements endpoint.Endpoint.
func (e *LoggingEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	start := time.Now()

	resp, err := e.inner.Call(ctx, req)

	duration := time.Since(start)

	fields := []Field{
		F("method", req.Method),
		F("duration", duration),
	}

	if requestID := RequestIDFromContext(ctx); requestID != "" {
		fields = append(fields, F("request_id", requestID))
	}

	if err != nil {
		fields = append(fields, F("error", err.Error()))
		e.logger.Error("request failed", fields...)
	} else {
		e.logger.Info("request completed", fields...)
	}

	return resp, err
}

// NopLogger is a logger that discards all log entries.
type NopLogger struct{}

func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
