package kernel

import (
	"log/slog"
	baseHttp "net/http"

	"github.com/Ferie/angular-dot-env-environments/metal/env"
)

func (a *App) SetRouter(router Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	a.logs.Close()
}

func (a *App) CloseTracer() {
	if a.tracer == nil {
		return
	}

	if err := a.tracer.Shutdown(); err != nil {
		slog.Error("tracer shutdown", "error", err)
	}
}

func (a *App) IsLocal() bool {
	return a.env != nil && a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env != nil && a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetMux() *baseHttp.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}
