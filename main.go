package main

import (
	"fmt"
	"log/slog"
	baseHttp "net/http"
	"os"
	"time"

	"github.com/Ferie/angular-dot-env-environments/metal/kernel"
	"github.com/Ferie/angular-dot-env-environments/pkg/cli"
	"github.com/Ferie/angular-dot-env-environments/pkg/endpoint"
	"github.com/Ferie/angular-dot-env-environments/pkg/portal"
)

func main() {
	app, err := bootstrap("./.env")
	if err != nil {
		slog.Error("could not bootstrap the app", "error", err)
		os.Exit(1)
	}

	if err := run(app); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func bootstrap(envPath string) (*kernel.App, error) {
	environment, err := kernel.IgniteLenient(envPath, portal.GetDefaultValidator())
	if err != nil {
		return nil, err
	}

	return kernel.MakeApp(environment)
}

func run(app *kernel.App) error {
	defer app.CloseLogs()
	defer app.CloseTracer()

	app.Boot()

	network := app.GetEnv().Network
	addr := network.GetHostURL()

	server := &baseHttp.Server{
		Addr:              addr,
		Handler:           app.GetHandler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	cli.Cyanln(fmt.Sprintf("Server initialized. Port: %s", network.GetHttpPort()))

	return endpoint.RunServer(addr, server)
}
