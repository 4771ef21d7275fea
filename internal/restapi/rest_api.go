package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"eldview.openfreight.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Handler returns the routed API wrapped in the standard middleware chain:
// request logging on the outside, then compression, rate limiting, and
// security headers around the router.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	handler := api.WithSecurityHeaders(router)
	handler = api.rateLimiter(handler)
	handler = CompressionMiddleware(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return handler
}
