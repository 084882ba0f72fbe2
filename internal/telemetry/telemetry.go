// Package telemetry provides OpenTelemetry tracing for game sessions.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "ghosthunt"
	serviceVersion = "0.1.0"
)

// Setup installs an OTLP HTTP trace exporter as the global provider.
// An empty endpoint falls back to the standard OTEL_EXPORTER_OTLP_* variables.
// The returned function flushes and stops the provider.
func Setup(ctx context.Context, endpoint string) (shutdown func(context.Context) error, err error) {
	var opts []otlptracehttp.Option
	if endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("session.id", SessionID()),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

var sessionID = uuid.NewString()

// SessionID identifies this process run in exported spans.
func SessionID() string {
	return sessionID
}

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("ghosthunt/" + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("ghosthunt/noop")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
