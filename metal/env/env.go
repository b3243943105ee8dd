package env

import (
	"os"
	"path/filepath"
	"strings"
)

type Environment struct {
	App     AppEnvironment
	Network NetEnvironment    `validate:"required"`
	Static  StaticEnvironment `validate:"required"`
	Logs    LogsEnvironment   `validate:"required"`
	Sentry  SentryEnvironment
	Tracing TracingEnvironment
	Metrics MetricsEnvironment
}

// SecretsDir defines where secret files are read from. It can be overridden in
// tests.
var SecretsDir = "/run/secrets"

func GetEnvVar(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func GetEnvVarOr(key, fallback string) string {
	if value := GetEnvVar(key); value != "" {
		return value
	}

	return fallback
}

// LookupEnvVar returns the raw value of key, or fallback when key is not set at all.
// An empty value is returned as is.
func LookupEnvVar(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func GetSecretOrEnv(secretName string, envVarName string) string {
	secretPath := filepath.Join(SecretsDir, secretName)

	content, err := os.ReadFile(secretPath)
	if err == nil {
		return strings.TrimSpace(string(content))
	}

	return GetEnvVar(envVarName)
}
