package kernel

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Ferie/angular-dot-env-environments/handler"
	"github.com/Ferie/angular-dot-env-environments/metal/env"
	"github.com/Ferie/angular-dot-env-environments/pkg/llogs"
	"github.com/Ferie/angular-dot-env-environments/pkg/middleware"
	"github.com/Ferie/angular-dot-env-environments/pkg/portal"
)

const indexDocument = "<html><body><app-root></app-root></body></html>"

func validEnvVars(t *testing.T) {
	t.Setenv("APP_NAME", "riccardo")
	t.Setenv("NODE_ENV", "development")
	t.Setenv("PORT", "9050")
	t.Setenv("ENV_HTTP_HOST", "localhost")
	t.Setenv("ENV_APP_LOG_LEVEL", "debug")
	t.Setenv("ENV_APP_LOGS_DIR", "")
	t.Setenv("ENV_APP_LOGS_DATE_FORMAT", "2006_01_02")
	t.Setenv("ENV_SENTRY_DSN", "")
	t.Setenv("ENV_TRACING_ENABLED", "false")
	t.Setenv("ENV_TRACING_OTLP_ENDPOINT", "")
	t.Setenv("ENV_METRICS_ENABLED", "false")
}

func keepDefaultLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
}

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}

		if msg, _ := r.(string); !strings.Contains(msg, contains) {
			t.Fatalf("panic %q does not mention %q", r, contains)
		}
	}()

	fn()
}

func testRouter(e *env.Environment) Router {
	return Router{
		Env: e,
		Mux: http.NewServeMux(),
		Pipeline: middleware.Pipeline{
			HttpsRedirect: middleware.MakeHttpsRedirect(e.App.IsProduction()),
		},
	}
}

func testSpa() handler.SpaHandler {
	return handler.MakeSpaHandlerFS(fstest.MapFS{
		"index.html":  {Data: []byte(indexDocument)},
		"main.js":     {Data: []byte("console.log('main')")},
		"favicon.ico": {Data: []byte{0x00, 0x01, 0x02}},
	}, "index.html")
}

func TestMakeEnv(t *testing.T) {
	validEnvVars(t)

	e := MakeEnv(portal.GetDefaultValidator())

	if e.App.Name != "riccardo" {
		t.Fatalf("env not loaded")
	}

	if e.Network.HttpPort != "9050" || e.Network.GetHostURL() != "localhost:9050" {
		t.Fatalf("unexpected network %+v", e.Network)
	}

	if e.Static.Dir != env.DefaultStaticDir || e.Static.Fallback != env.DefaultFallbackFile {
		t.Fatalf("unexpected static %+v", e.Static)
	}
}

func TestMakeEnvDefaults(t *testing.T) {
	validEnvVars(t)
	os.Unsetenv("PORT")
	os.Unsetenv("ENV_APP_LOG_LEVEL")
	os.Unsetenv("NODE_ENV")

	e := MakeEnv(portal.GetDefaultValidator())

	if e.Network.HttpPort != env.DefaultHttpPort {
		t.Fatalf("expected default port, got %q", e.Network.HttpPort)
	}

	if e.Logs.Level != "info" {
		t.Fatalf("expected info level, got %q", e.Logs.Level)
	}

	if e.App.IsProduction() || !e.App.IsLocal() {
		t.Fatalf("empty NODE_ENV should be local")
	}
}

func TestMakeEnvInvalid(t *testing.T) {
	cases := []struct {
		name     string
		key      string
		value    string
		contains string
	}{
		{"non numeric port", "PORT", "http", "PORT"},
		{"port out of range", "PORT", "70000", "PORT"},
		{"log level", "ENV_APP_LOG_LEVEL", "verbose", "[LOGS]"},
		{"sentry dsn", "ENV_SENTRY_DSN", "not a url", "[SENTRY]"},
		{"http host", "ENV_HTTP_HOST", "bad host!", "[NETWORK]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			validEnvVars(t)
			t.Setenv(tc.key, tc.value)

			expectPanic(t, tc.contains, func() {
				MakeEnv(portal.GetDefaultValidator())
			})
		})
	}
}

func TestMakeEnvTracing(t *testing.T) {
	validEnvVars(t)
	t.Setenv("ENV_TRACING_ENABLED", "true")

	e := MakeEnv(portal.GetDefaultValidator())

	if !e.Tracing.Enabled || e.Tracing.Endpoint != env.DefaultTracingEndpoint {
		t.Fatalf("unexpected tracing %+v", e.Tracing)
	}
}

func TestIgniteLenientMalformedFile(t *testing.T) {
	validEnvVars(t)

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FOO-BAR=1\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}

	if _, err := IgniteLenient(path, portal.GetDefaultValidator()); err == nil {
		t.Fatalf("a malformed file must not be ignored")
	}
}

func TestIgniteLenient(t *testing.T) {
	keepDefaultLogger(t)
	validEnvVars(t)
	os.Unsetenv("PORT")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=8080\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}

	t.Cleanup(func() { os.Unsetenv("PORT") })

	e, err := IgniteLenient(path, portal.GetDefaultValidator())
	if err != nil {
		t.Fatalf("ignite: %v", err)
	}

	if e.Network.HttpPort != "8080" {
		t.Fatalf("env not loaded, port %q", e.Network.HttpPort)
	}
}

func TestIgniteLenientMissingFile(t *testing.T) {
	keepDefaultLogger(t)
	validEnvVars(t)

	e, err := IgniteLenient(filepath.Join(t.TempDir(), ".env"), portal.GetDefaultValidator())
	if err != nil {
		t.Fatalf("missing file should be tolerated: %v", err)
	}

	if e.Network.HttpPort != "9050" {
		t.Fatalf("process environment not used")
	}
}

func TestAppBootNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic")
		}
	}()

	var a *App
	a.Boot()
}

func TestAppHelpers(t *testing.T) {
	app := &App{}

	mux := http.NewServeMux()
	app.SetRouter(Router{Mux: mux})

	if app.GetMux() != mux {
		t.Fatalf("mux not set")
	}

	app.CloseLogs()
	app.CloseTracer()

	if app.GetEnv() != nil {
		t.Fatalf("expected nil env")
	}

	if app.IsProduction() || app.IsLocal() {
		t.Fatalf("nil env has no mode")
	}
}

func TestGetMuxNil(t *testing.T) {
	app := &App{}

	if app.GetMux() != nil {
		t.Fatalf("expected nil mux")
	}

	rec := httptest.NewRecorder()
	app.GetHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSpaRoutes(t *testing.T) {
	validEnvVars(t)

	cases := []struct {
		name     string
		nodeEnv  string
		path     string
		proto    string
		status   int
		body     string
		location string
	}{
		{"asset in production", "production", "/main.js", "", http.StatusOK, "console.log('main')", ""},
		{"deep link redirected", "production", "/dashboard/42?tab=1", "", http.StatusFound, "", "https://example.com/dashboard/42?tab=1"},
		{"deep link over https", "production", "/dashboard/42", "https", http.StatusOK, indexDocument, ""},
		{"uppercase proto still redirected", "production", "/dashboard/42", "HTTPS", http.StatusFound, "", "https://example.com/dashboard/42"},
		{"capitalised mode is not production", "Production", "/dashboard/42", "", http.StatusOK, indexDocument, ""},
		{"deep link in development", "development", "/dashboard/42", "", http.StatusOK, indexDocument, ""},
		{"header ignored outside production", "development", "/about", "http", http.StatusOK, indexDocument, ""},
		{"root in development", "development", "/", "", http.StatusOK, indexDocument, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("NODE_ENV", tc.nodeEnv)

			e := MakeEnv(portal.GetDefaultValidator())
			router := testRouter(e)
			router.SpaFrom(testSpa())

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Host = "example.com:9050"
			if tc.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tc.proto)
			}

			rec := httptest.NewRecorder()
			router.Mux.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status %d, want %d", rec.Code, tc.status)
			}

			if tc.body != "" && rec.Body.String() != tc.body {
				t.Fatalf("body %q", rec.Body.String())
			}

			if got := rec.Header().Get("Location"); got != tc.location {
				t.Fatalf("location %q, want %q", got, tc.location)
			}
		})
	}
}

func TestSpaRoutesRejectOtherMethods(t *testing.T) {
	validEnvVars(t)

	router := testRouter(MakeEnv(portal.GetDefaultValidator()))
	router.SpaFrom(testSpa())

	rec := httptest.NewRecorder()
	router.Mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/main.js", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestMakeAppBoot(t *testing.T) {
	keepDefaultLogger(t)
	validEnvVars(t)
	t.Setenv("ENV_METRICS_ENABLED", "true")

	app, err := MakeApp(MakeEnv(portal.GetDefaultValidator()))
	if err != nil {
		t.Fatalf("make app: %v", err)
	}

	defer app.CloseLogs()

	app.Boot()

	h := app.GetHandler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/deep/link", nil))

	// the test binary runs without a built bundle
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a bundle, got %d", rec.Code)
	}

	if rec.Header().Get(portal.RequestIDHeader) == "" {
		t.Fatalf("request id not echoed")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, env.MetricsPath, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status %d", rec.Code)
	}

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "spa_http_requests_total") {
		t.Fatalf("request counter missing from exposition")
	}
}

func TestMetricsRouteDisabled(t *testing.T) {
	keepDefaultLogger(t)
	validEnvVars(t)
	t.Setenv("NODE_ENV", "production")

	app, err := MakeApp(MakeEnv(portal.GetDefaultValidator()))
	if err != nil {
		t.Fatalf("make app: %v", err)
	}

	defer app.CloseLogs()

	app.Boot()

	req := httptest.NewRequest(http.MethodGet, env.MetricsPath, nil)
	req.Host = "example.com"

	rec := httptest.NewRecorder()
	app.GetHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("metrics path should fall through to the catch-all, got %d", rec.Code)
	}
}

func TestMakeLogs(t *testing.T) {
	keepDefaultLogger(t)
	validEnvVars(t)

	dir := t.TempDir()
	t.Setenv("ENV_APP_LOGS_DIR", dir+"/log-%s.txt")

	e := MakeEnv(portal.GetDefaultValidator())

	driver := MakeLogs(e)
	fl, ok := driver.(llogs.FilesLogs)
	if !ok {
		t.Fatalf("expected file driver, got %T", driver)
	}

	if !strings.HasPrefix(fl.DefaultPath(), dir) {
		t.Fatalf("wrong log dir")
	}

	app := &App{logs: driver}
	app.CloseLogs()
}

func TestMakeSentry(t *testing.T) {
	validEnvVars(t)

	if s := MakeSentry(MakeEnv(portal.GetDefaultValidator())); s != nil {
		t.Fatalf("sentry should stay off without a DSN")
	}

	t.Setenv("ENV_SENTRY_DSN", "https://public@o0.ingest.sentry.io/0")

	s := MakeSentry(MakeEnv(portal.GetDefaultValidator()))

	if s == nil || s.Handler == nil {
		t.Fatalf("sentry setup failed")
	}
}

func TestMakeTracerDisabled(t *testing.T) {
	validEnvVars(t)

	tp := MakeTracer(MakeEnv(portal.GetDefaultValidator()))

	if tp == nil || tp.Provider != nil {
		t.Fatalf("expected no-op tracer provider")
	}

	if err := tp.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestMakeMetricsDisabled(t *testing.T) {
	validEnvVars(t)

	registry, metrics := MakeMetrics(MakeEnv(portal.GetDefaultValidator()))

	if registry != nil || metrics != nil {
		t.Fatalf("metrics should be off by default")
	}
}
