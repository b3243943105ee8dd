package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsHandler struct {
	handler http.Handler
}

func MakeMetricsHandler(gatherer prometheus.Gatherer) MetricsHandler {
	return MetricsHandler{
		handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	}
}

// ServeHTTP bypasses the API error handling since Prometheus uses its own format.
func (h MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}
