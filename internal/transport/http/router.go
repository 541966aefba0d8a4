// Package httptransport assembles the public HTTP surface: global middleware,
// health and metrics endpoints, auth routes and the token-guarded tracking API.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "shiptrack/internal/auth/handler"
	"shiptrack/internal/platform/metrics"
	trackinghandler "shiptrack/internal/tracking/handler"
	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/platform/httputil"
	authmw "shiptrack/pkg/platform/middleware/auth"
	"shiptrack/pkg/platform/middleware/request"
	"shiptrack/pkg/platform/middleware/requesttime"
)

// Options configures the cross-cutting middleware.
type Options struct {
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
}

// Deps are the collaborators mounted on the router.
type Deps struct {
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
	Metrics  *metrics.Metrics
	Verifier authmw.TokenVerifier
	Auth     *authhandler.Handler
	Tracking *trackinghandler.Handler
}

// NewRouter wires every route. Middleware order: request id, clock, recovery,
// access log, metrics, CORS, timeout.
func NewRouter(opts Options, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(request.Recovery(d.Logger))
	r.Use(request.Logger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Latency)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", request.HeaderRequestID},
		ExposedHeaders: []string{request.HeaderRequestID},
		MaxAge:         300,
	}))
	if opts.RequestTimeout > 0 {
		r.Use(request.Timeout(opts.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{
			Error:            "method_not_allowed",
			ErrorDescription: "method not allowed",
		})
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	requireAuth := authmw.RequireAuth(d.Verifier, d.Logger)
	r.Route("/api", func(r chi.Router) {
		r.Use(request.ContentTypeJSON)
		r.Route("/auth", func(r chi.Router) {
			d.Auth.Register(r, requireAuth)
		})
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			d.Tracking.Register(r)
		})
	})

	return r
}
