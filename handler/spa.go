package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/Ferie/angular-dot-env-environments/metal/env"
	"github.com/Ferie/angular-dot-env-environments/pkg/endpoint"
	"github.com/Ferie/angular-dot-env-environments/pkg/portal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const directoryIndex = "index.html"

// SpaHandler serves a pre-built single page application. Requests that name
// an asset get its bytes; anything else is handed to the catch-all chain,
// which ends in Fallback.
type SpaHandler struct {
	assets   fs.FS
	fallback string
	tracer   trace.Tracer
}

func MakeSpaHandler(static env.StaticEnvironment) SpaHandler {
	return MakeSpaHandlerFS(os.DirFS(static.Dir), static.Fallback)
}

func MakeSpaHandlerFS(assets fs.FS, fallback string) SpaHandler {
	return SpaHandler{
		assets:   assets,
		fallback: fallback,
		tracer:   otel.Tracer(portal.TracerName),
	}
}

// Resolve maps a request path onto a regular file of the asset tree. A
// directory resolves to its index.html when it has one. Dotfiles are never
// assets.
func (h SpaHandler) Resolve(urlPath string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "."
	} else if hasHiddenSegment(name) {
		return "", false
	}

	info, err := fs.Stat(h.assets, name)
	if err != nil {
		return "", false
	}

	if info.IsDir() {
		name = path.Join(name, directoryIndex)

		if info, err = fs.Stat(h.assets, name); err != nil {
			return "", false
		}
	}

	if !info.Mode().IsRegular() {
		return "", false
	}

	return name, true
}

func hasHiddenSegment(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}

	return false
}

// Assets is the outermost step of the catch-all chain.
func (h SpaHandler) Assets(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		ctx, span := h.tracer.Start(r.Context(), "spa.serve",
			trace.WithAttributes(attribute.String("http.target", r.URL.Path)),
		)
		defer span.End()

		r = r.WithContext(ctx)

		name, ok := h.Resolve(r.URL.Path)
		if !ok {
			return next(w, r)
		}

		span.SetAttributes(attribute.String("spa.branch", "asset"))

		if err := h.serve(w, r, name); err != nil {
			return endpoint.LogInternalError("could not read asset "+name, err)
		}

		return nil
	}
}

// Fallback sends the entry document so the client-side router can take over.
func (h SpaHandler) Fallback(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("spa.branch", "fallback"))

	w.Header().Set("Cache-Control", "no-cache")

	if err := h.serve(w, r, h.fallback); err != nil {
		w.Header().Del("Cache-Control")

		if errors.Is(err, fs.ErrNotExist) {
			return endpoint.LogNotFound("the entry document is missing", err)
		}

		return endpoint.LogInternalError("could not read the entry document", err)
	}

	return nil
}

func (h SpaHandler) serve(w http.ResponseWriter, r *http.Request, name string) error {
	file, err := h.assets.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}

	defer portal.CloseWithLog(file)

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", name, err)
	}

	if info.IsDir() {
		return fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}

	content, ok := file.(io.ReadSeeker)
	if !ok {
		raw, err := io.ReadAll(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		content = bytes.NewReader(raw)
	}

	http.ServeContent(w, r, path.Base(name), info.ModTime(), content)

	return nil
}
