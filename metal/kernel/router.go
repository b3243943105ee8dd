package kernel

import (
	baseHttp "net/http"

	"github.com/Ferie/angular-dot-env-environments/handler"
	"github.com/Ferie/angular-dot-env-environments/metal/env"
	"github.com/Ferie/angular-dot-env-environments/pkg/endpoint"
	"github.com/Ferie/angular-dot-env-environments/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Router struct {
	Env      *env.Environment
	Mux      *baseHttp.ServeMux
	Pipeline middleware.Pipeline
}

// Spa mounts the static bundle. Assets are served as they are; the
// catch-all branch goes through the HTTPS redirect before the fallback.
func (r *Router) Spa() {
	spa := handler.MakeSpaHandler(r.Env.Static)

	r.SpaFrom(spa)
}

func (r *Router) SpaFrom(spa handler.SpaHandler) {
	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(
			spa.Fallback,
			spa.Assets,
			r.Pipeline.HttpsRedirect.Handle,
		),
	)

	r.Mux.HandleFunc("GET /", apiHandler)
}

func (r *Router) Metrics(gatherer prometheus.Gatherer) {
	abstract := handler.MakeMetricsHandler(gatherer)

	r.Mux.Handle("GET "+env.MetricsPath, abstract)
}
