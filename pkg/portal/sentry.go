package portal

import sentryhttp "github.com/getsentry/sentry-go/http"

type Sentry struct {
	Handler *sentryhttp.Handler
}
