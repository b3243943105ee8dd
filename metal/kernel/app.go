package kernel

import (
	baseHttp "net/http"

	"github.com/Ferie/angular-dot-env-environments/metal/env"
	"github.com/Ferie/angular-dot-env-environments/pkg/endpoint"
	"github.com/Ferie/angular-dot-env-environments/pkg/llogs"
	"github.com/Ferie/angular-dot-env-environments/pkg/middleware"
	"github.com/Ferie/angular-dot-env-environments/pkg/portal"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	router   *Router
	sentry   *portal.Sentry
	logs     llogs.Driver
	tracer   *portal.TracerProvider
	env      *env.Environment
	registry *prometheus.Registry
	metrics  *middleware.Metrics
}

func MakeApp(env *env.Environment) (*App, error) {
	registry, metrics := MakeMetrics(env)

	app := App{
		env:      env,
		logs:     MakeLogs(env),
		sentry:   MakeSentry(env),
		tracer:   MakeTracer(env),
		registry: registry,
		metrics:  metrics,
	}

	router := Router{
		Env: env,
		Mux: baseHttp.NewServeMux(),
		Pipeline: middleware.Pipeline{
			HttpsRedirect: middleware.MakeHttpsRedirect(env.App.IsProduction()),
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	if a.registry != nil {
		router.Metrics(a.registry)
	}

	router.Spa()
}

// GetHandler returns the mux wrapped in the ambient middleware stack.
func (a *App) GetHandler() baseHttp.Handler {
	cfg := endpoint.ServerHandlerConfig{
		IsProduction: a.IsProduction(),
		Middlewares: []func(baseHttp.Handler) baseHttp.Handler{
			middleware.RequestID,
		},
	}

	if mux := a.GetMux(); mux != nil {
		cfg.Mux = mux
	}

	if a.metrics != nil {
		cfg.Middlewares = append(cfg.Middlewares, a.metrics.Handle)
	}

	cfg.Middlewares = append(cfg.Middlewares, middleware.Brotli)

	if a.env != nil && a.env.Network.GetHttpHost() != "" {
		cfg.DevHost = "http://" + a.env.Network.GetHostURL()
	}

	if a.sentry != nil {
		cfg.Wrap = a.sentry.Handler.Handle
	}

	return endpoint.NewServerHandler(cfg)
}
