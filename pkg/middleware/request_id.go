package middleware

import (
	"net/http"
	"strings"

	"github.com/Ferie/angular-dot-env-environments/pkg/portal"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// RequestID keeps a sane incoming X-Request-ID or mints a new one, and exposes
// it on the response and in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))

		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		w.Header().Set(portal.RequestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(portal.WithRequestID(r.Context(), id)))
	})
}
