package kernel

import (
	"log/slog"
	"strconv"

	"github.com/Ferie/angular-dot-env-environments/metal/env"
	"github.com/Ferie/angular-dot-env-environments/pkg/llogs"
	"github.com/Ferie/angular-dot-env-environments/pkg/middleware"
	"github.com/Ferie/angular-dot-env-environments/pkg/portal"
	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// MakeSentry initialises the Sentry client. It returns nil when no DSN is
// configured, in which case events are silently dropped by the SDK.
func MakeSentry(env *env.Environment) *portal.Sentry {
	if !env.Sentry.IsEnabled() {
		return nil
	}

	cOptions := sentry.ClientOptions{
		Dsn:         env.Sentry.DSN,
		Environment: env.App.Type,
		Debug:       env.App.IsLocal(),
	}

	if err := sentry.Init(cOptions); err != nil {
		panic("sentry: error initialising client: " + err.Error())
	}

	handler := sentryhttp.New(sentryhttp.Options{Repanic: false})

	return &portal.Sentry{Handler: handler}
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

// MakeTracer never fails the boot: an exporter that cannot be built leaves
// the no-op provider in place.
func MakeTracer(env *env.Environment) *portal.TracerProvider {
	tp, err := portal.NewTracerProvider(env)

	if err != nil {
		slog.Error("tracing: falling back to no-op provider", "error", err)

		return &portal.TracerProvider{Env: env}
	}

	return tp
}

// MakeMetrics builds a private registry with the request collectors plus the
// Go runtime and process collectors. Both results are nil when metrics are off.
func MakeMetrics(env *env.Environment) (*prometheus.Registry, *middleware.Metrics) {
	if !env.Metrics.Enabled {
		return nil, nil
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := middleware.MakeMetrics(registry)
	if err != nil {
		panic("metrics: error registering collectors: " + err.Error())
	}

	return registry, metrics
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	app := env.AppEnvironment{
		Name: env.GetEnvVar("APP_NAME"),
		Type: env.GetEnvVar("NODE_ENV"),
	}

	port := env.GetEnvVarOr("PORT", env.DefaultHttpPort)
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		panic(errorSuffix + "invalid value for PORT: " + strconv.Quote(port))
	}

	netEnv := env.NetEnvironment{
		HttpHost: env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort: port,
	}

	staticEnv := env.StaticEnvironment{
		Dir:      env.DefaultStaticDir,
		Fallback: env.DefaultFallbackFile,
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVarOr("ENV_APP_LOG_LEVEL", "info"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVarOr("ENV_APP_LOGS_DATE_FORMAT", env.DefaultLogsDateFormat),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetSecretOrEnv("sentry_dsn", "ENV_SENTRY_DSN"),
	}

	tracingEnv := env.NewTracingEnvironment()
	metricsEnv := env.NewMetricsEnvironment()

	if _, err := validate.Rejects(app); err != nil {
		panic(errorSuffix + "invalid [APP] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(netEnv); err != nil {
		panic(errorSuffix + "invalid [NETWORK] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(staticEnv); err != nil {
		panic(errorSuffix + "invalid [STATIC] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(logsEnv); err != nil {
		panic(errorSuffix + "invalid [LOGS] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(sentryEnv); err != nil {
		panic(errorSuffix + "invalid [SENTRY] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(tracingEnv); err != nil {
		panic(errorSuffix + "invalid [TRACING] model: " + validate.GetErrorsAsJson())
	}

	host := &env.Environment{
		App:     app,
		Network: netEnv,
		Static:  staticEnv,
		Logs:    logsEnv,
		Sentry:  sentryEnv,
		Tracing: tracingEnv,
		Metrics: metricsEnv,
	}

	if _, err := validate.Rejects(host); err != nil {
		panic(errorSuffix + "invalid [HOST] model: " + validate.GetErrorsAsJson())
	}

	return host
}
