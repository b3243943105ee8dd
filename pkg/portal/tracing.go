package portal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Ferie/angular-dot-env-environments/metal/env"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const TracerName = "github.com/Ferie/angular-dot-env-environments"

// TracerProvider wraps the OpenTelemetry tracer provider
type TracerProvider struct {
	Provider *sdktrace.TracerProvider
	Env      *env.Environment
}

// NewTracerProvider initializes OpenTelemetry with an OTLP HTTP exporter. When tracing is
// disabled the global no-op provider stays in place.
func NewTracerProvider(environment *env.Environment) (*TracerProvider, error) {
	if !environment.Tracing.Enabled {
		slog.Debug("OpenTelemetry tracing is disabled")

		return &TracerProvider{Env: environment}, nil
	}

	ctx := context.Background()

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(getEndpointHost(environment.Tracing.Endpoint)),
	}

	if !environment.App.IsProduction() {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName(environment)),
			attribute.String("deployment.environment", environment.App.Type),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	slog.Info("OpenTelemetry tracing initialized", "endpoint", environment.Tracing.Endpoint)

	return &TracerProvider{
		Provider: tp,
		Env:      environment,
	}, nil
}

func (tp *TracerProvider) Shutdown() error {
	if tp == nil || tp.Provider == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tp.Provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}

	return nil
}

func serviceName(environment *env.Environment) string {
	if name := strings.TrimSpace(environment.App.Name); name != "" {
		return name
	}

	return "spa-host"
}

// getEndpointHost extracts the host:port from a full URL
// e.g., "http://localhost:4318" -> "localhost:4318"
func getEndpointHost(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	return strings.TrimSuffix(endpoint, "/")
}
