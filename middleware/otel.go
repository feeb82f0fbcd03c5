package middleware

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/pipeline-go/endpoint"
	"github.com/felixgeelhaar/pipeline-go/protocol"
)

const (
	instrumentationName = "github.com/felixgeelhaar/pipeline-go"
)

// TracingOption configures the Tracing middleware.
type TracingOption func(*tracingConfig)

type tracingConfig struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	serviceName    string
	skipMethods    map[string]bool
}

// WithTracerProvider sets a custom tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *tracingConfig) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets a custom meter provider.
func WithMeterProvider(mp metric.MeterProvider) TracingOption {
	return func(c *tracingConfig) {
		c.meterProvider = mp
	}
}

// WithTracingServiceName sets the service name for telemetry.
func WithTracingServiceName(name string) TracingOption {
	return func(c *tracingConfig) {
		c.serviceName = name
	}
}

// WithTracingSkipMethods specifies methods to skip for tracing.
func WithTracingSkipMethods(methods ...string) TracingOption {
	return func(c *tracingConfig) {
		for _, m := range methods {
			c.skipMethods[m] = true
		}
	}
}

// Tracing returns middleware that adds OpenTelemetry tracing and metrics.
// It creates a span for each request and records request counts, error
// counts, and latency.
func Tracing[E endpoint.Endpoint](opts ...TracingOption) Middleware[E, *TracingEndpoint[E]] {
	cfg := &tracingConfig{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		serviceName:    "pipeline",
		skipMethods:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tracer := cfg.tracerProvider.Tracer(
		instrumentationName,
		trace.WithInstrumentationVersion("1.0.0"),
	)

	meter := cfg.meterProvider.Meter(
		instrumentationName,
		metric.WithInstrumentationVersion("1.0.0"),
	)

	requestCounter, _ := meter.Int64Counter(
		"pipeline.requests",
		metric.WithDescription("Total number of pipeline requests"),
		metric.WithUnit("{request}"),
	)

	requestDuration, _ := meter.Float64Histogram(
		"pipeline.request.duration",
		metric.WithDescription("Duration of pipeline requests"),
		metric.WithUnit("ms"),
	)

	errorCounter, _ := meter.Int64Counter(
		"pipeline.errors",
		metric.WithDescription("Total number of pipeline errors"),
		metric.WithUnit("{error}"),
	)

	return func(ep E) *TracingEndpoint[E] {
		return &TracingEndpoint[E]{
			inner:           ep,
			tracer:          tracer,
			serviceName:     cfg.serviceName,
			skipMethods:     cfg.skipMethods,
			requestCounter:  requestCounter,
			requestDuration: requestDuration,
			errorCounter:    errorCounter,
		}
	}
}

// TracingEndpoint is the endpoint type produced by Tracing.
type TracingEndpoint[E endpoint.Endpoint] struct {
	inner           E
	tracer          trace.Tracer
	serviceName     string
	skipMethods     map[string]bool
	requestCounter  metric.Int64Counter
	requestDuration metric.Float64Histogram
	errorCounter    metric.Int64Counter
}

// Call implements endpoint.Endpoint.
func (e *TracingEndpoint[E]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	if e.skipMethods[req.Method] {
		return e.inner.Call(ctx, req)
	}

	spanName := "pipeline." + req.Method
	ctx, span := e.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("pipeline.method", req.Method),
			attribute.String("service.name", e.serviceName),
		),
	)
	defer span.End()

	if reqID := RequestIDFromContext(ctx); reqID != "" {
		span.SetAttributes(attribute.String("pipeline.request_id", reqID))
	}

	startTime := time.Now()

	attrs := []attribute.KeyValue{
		attribute.String("pipeline.method", req.Method),
		attribute.String("service.name", e.serviceName),
	}

	e.requestCounter.Add(ctx, 1, metric.WithAttributes(attrs...))

	resp, err := e.inner.Call(ctx, req)

	duration := float64(time.Since(startTime).Milliseconds())
	e.requestDuration.Record(ctx, duration, metric.WithAttributes(attrs...))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		var protoErr *protocol.Error
		if errors.As(err, &protoErr) {
			span.SetAttributes(attribute.Int("pipeline.error_code", protoErr.Code))
			e.errorCounter.Add(ctx, 1, metric.WithAttributes(
				append(attrs, attribute.Int("pipeline.error_code", protoErr.Code))...,
			))
		} else {
			e.errorCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
		}
	} else if resp != nil && resp.Error != nil {
		span.SetStatus(codes.Error, resp.Error.Message)
		span.SetAttributes(attribute.Int("pipeline.error_code", resp.Error.Code))
		e.errorCounter.Add(ctx, 1, metric.WithAttributes(
			append(attrs, attribute.Int("pipeline.error_code", resp.Error.Code))...,
		))
	} else {
		span.SetStatus(codes.Ok, "")
	}

	return resp, err
}

// SpanFromContext returns the current span from context.
// Returns a no-op span if no span is present.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}

// AddSpanEvent adds an event to the current span.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// SetSpanAttribute sets an attribute on the current span.
func SetSpanAttribute(ctx context.Context, key string, value any) {
	span := trace.SpanFromContext(ctx)
	switch v := value.(type) {
	case string:
		span.SetAttributes(attribute.String(key, v))
	case int:
		span.SetAttributes(attribute.Int(key, v))
	case int64:
		span.SetAttributes(attribute.Int64(key, v))
	case float64:
		span.SetAttributes(attribute.Float64(key, v))
	case bool:
		span.SetAttributes(attribute.Bool(key, v))
	case []string:
		span.SetAttributes(attribute.StringSlice(key, v))
	}
}
