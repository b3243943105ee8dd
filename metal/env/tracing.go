package env

import (
	"log/slog"
	"strconv"
)

const DefaultTracingEndpoint = "http://localhost:4318"

// TracingEnvironment holds configuration for OpenTelemetry tracing
type TracingEnvironment struct {
	Enabled  bool
	Endpoint string `validate:"required_if=Enabled true,omitempty,url"`
}

func NewTracingEnvironment() TracingEnvironment {
	enabled, _ := strconv.ParseBool(GetEnvVar("ENV_TRACING_ENABLED"))
	endpoint := GetEnvVar("ENV_TRACING_OTLP_ENDPOINT")

	if enabled && endpoint == "" {
		endpoint = DefaultTracingEndpoint
		slog.Warn("tracing enabled but ENV_TRACING_OTLP_ENDPOINT not set, using default", "endpoint", endpoint)
	}

	return TracingEnvironment{
		Enabled:  enabled,
		Endpoint: endpoint,
	}
}
