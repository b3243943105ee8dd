package middleware

import "github.com/Ferie/angular-dot-env-environments/pkg/endpoint"

type Pipeline struct {
	HttpsRedirect HttpsRedirect
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}
