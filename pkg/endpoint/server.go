package endpoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
)

const AngularDevServer = "http://localhost:4200"

// RunServer binds the server address first so a port already in use fails
// fast, then serves until a shutdown signal arrives and drains in-flight requests.
func RunServer(addr string, server *http.Server) error {
	if server == nil {
		return errors.New("nil http server")
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	return Serve(listener, server, sigCh)
}

// Serve runs server on listener until stop yields a value.
func Serve(listener net.Listener, server *http.Server, stop <-chan os.Signal) error {
	addr := listener.Addr().String()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	slog.Info("starting server", slog.String("address", addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}

		return nil
	case sig := <-stop:
		slog.Info("shutdown signal received", slog.Any("signal", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("shutting down server", slog.String("address", addr))

	if err := server.Shutdown(ctx); err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, http.ErrServerClosed):
			// expected shutdown path
		case errors.Is(err, context.DeadlineExceeded):
			slog.Warn("graceful shutdown timed out, forcing close", slog.String("address", addr))

			if closeErr := server.Close(); closeErr != nil {
				slog.Error("force close server failed", slog.String("address", addr), "error", closeErr)
			}
		default:
			return fmt.Errorf("shutdown server: %w", err)
		}
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	slog.Info("server stopped", slog.String("address", addr))

	return nil
}

// ServerHandlerConfig describes how the outer HTTP handler is assembled.
type ServerHandlerConfig struct {
	Mux          http.Handler
	IsProduction bool
	DevHost      string
	Middlewares  []func(http.Handler) http.Handler
	Wrap         func(http.Handler) http.Handler
}

// NewServerHandler applies the middlewares in order (the first one is the
// outermost), adds permissive CORS for the Angular dev server outside
// production, and finally applies Wrap (Sentry instrumentation) when supplied.
func NewServerHandler(cfg ServerHandlerConfig) http.Handler {
	if cfg.Mux == nil {
		return http.NotFoundHandler()
	}

	handler := cfg.Mux

	for i := len(cfg.Middlewares) - 1; i >= 0; i-- {
		if cfg.Middlewares[i] != nil {
			handler = cfg.Middlewares[i](handler)
		}
	}

	if !cfg.IsProduction {
		origins := []string{AngularDevServer}
		if host := cfg.DevHost; host != "" {
			origins = append(origins, host)
		}

		c := cors.New(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Accept-Encoding", "If-None-Match", "If-Modified-Since", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
		})

		handler = c.Handler(handler)
	}

	if cfg.Wrap != nil {
		handler = cfg.Wrap(handler)
	}

	return handler
}
