package portal

// ---- HTTP headers

const RequestIDHeader = "X-Request-ID"
const ForwardedProtoHeader = "X-Forwarded-Proto"
const ForwardedForHeader = "X-Forwarded-For"

// ---- Context

type contextKey string

const RequestIDKey contextKey = "request.id"
