package portal

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}

// ForwardedProto returns the client-facing scheme reported by an upstream proxy.
// When the header carries a list, the first hop wins. The value is case sensitive.
func ForwardedProto(r *http.Request) string {
	value := strings.TrimSpace(r.Header.Get(ForwardedProtoHeader))
	if value == "" {
		return ""
	}

	first, _, _ := strings.Cut(value, ",")

	return strings.TrimSpace(first)
}

// Hostname is the request host without its port.
func Hostname(r *http.Request) string {
	host := strings.TrimSpace(r.Host)

	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}

	return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
}

// HttpsURL rebuilds the request URL on the https scheme, keeping path and query.
func HttpsURL(r *http.Request) string {
	host := Hostname(r)
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	return "https://" + host + r.URL.RequestURI()
}

func ParseClientIP(r *http.Request) string {
	xff := strings.TrimSpace(r.Header.Get(ForwardedForHeader))
	if xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	return strings.TrimSpace(r.RemoteAddr)
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(RequestIDKey).(string); ok {
		return strings.TrimSpace(v)
	}

	return ""
}
