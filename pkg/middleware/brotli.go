package middleware

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

var compressibleTypes = []string{
	"text/",
	"application/javascript",
	"application/json",
	"application/manifest+json",
	"application/xml",
	"application/wasm",
	"image/svg+xml",
}

// Brotli compresses successful, compressible responses for clients that
// advertise "br". Everything else passes through byte for byte.
func Brotli(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !acceptsBrotli(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")

		bw := &brotliWriter{ResponseWriter: w, head: r.Method == http.MethodHead}
		defer bw.Close()

		next.ServeHTTP(bw, r)
	})
}

func acceptsBrotli(header string) bool {
	for _, part := range strings.Split(header, ",") {
		token, params, _ := strings.Cut(strings.TrimSpace(part), ";")

		if !strings.EqualFold(strings.TrimSpace(token), "br") {
			continue
		}

		params = strings.ReplaceAll(params, " ", "")

		return params != "q=0" && params != "q=0.0" && params != "q=0.00" && params != "q=0.000"
	}

	return false
}

func isCompressible(contentType string) bool {
	contentType = strings.ToLower(contentType)

	for _, prefix := range compressibleTypes {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}

	return false
}

type brotliWriter struct {
	http.ResponseWriter
	encoder     *brotli.Writer
	head        bool
	compress    bool
	wroteHeader bool
}

func (b *brotliWriter) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}

	b.wroteHeader = true

	h := b.Header()

	if code == http.StatusOK && !b.head && h.Get("Content-Encoding") == "" && isCompressible(h.Get("Content-Type")) {
		b.compress = true

		h.Set("Content-Encoding", "br")
		h.Del("Content-Length")
		h.Del("Accept-Ranges")
	}

	b.ResponseWriter.WriteHeader(code)
}

func (b *brotliWriter) Write(p []byte) (int, error) {
	if !b.wroteHeader {
		if b.Header().Get("Content-Type") == "" {
			b.Header().Set("Content-Type", http.DetectContentType(p))
		}

		b.WriteHeader(http.StatusOK)
	}

	if !b.compress {
		return b.ResponseWriter.Write(p)
	}

	if b.encoder == nil {
		b.encoder = brotli.NewWriterLevel(b.ResponseWriter, brotli.DefaultCompression)
	}

	return b.encoder.Write(p)
}

func (b *brotliWriter) Close() error {
	if b.encoder == nil {
		return nil
	}

	return b.encoder.Close()
}

func (b *brotliWriter) Unwrap() http.ResponseWriter {
	return b.ResponseWriter
}
