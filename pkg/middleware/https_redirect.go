package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Ferie/angular-dot-env-environments/pkg/endpoint"
	"github.com/Ferie/angular-dot-env-environments/pkg/portal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// HttpsRedirect sends production traffic that did not reach the upstream
// proxy over TLS back to the same host and path on https.
type HttpsRedirect struct {
	isProduction bool
	status       int
}

func MakeHttpsRedirect(isProduction bool) HttpsRedirect {
	return HttpsRedirect{
		isProduction: isProduction,
		status:       http.StatusFound,
	}
}

func (h HttpsRedirect) ShouldRedirect(r *http.Request) bool {
	return h.isProduction && portal.ForwardedProto(r) != "https"
}

func (h HttpsRedirect) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		if !h.ShouldRedirect(r) {
			return next(w, r)
		}

		target := portal.HttpsURL(r)

		trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("spa.branch", "redirect"))

		slog.Debug("redirecting to https", "from", r.URL.RequestURI(), "to", target)

		http.Redirect(w, r, target, h.status)

		return nil
	}
}
