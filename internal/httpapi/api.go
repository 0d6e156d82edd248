// Package httpapi serves the demo REST API and maps contract violations to
// HTTP responses: a failed precondition is the caller's fault (400), any
// other violation is a defect in the service (500).
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/rafaeljc/dbc/internal/tracestore"
	"github.com/rafaeljc/dbc/pkg/contract"
)

// API holds the router and the dependencies of the handlers.
type API struct {
	// Router is the Chi multiplexer that handles HTTP requests.
	Router *chi.Mux

	logger  *slog.Logger
	checker *contract.Checker

	// traces is optional; without it /v1/traces is not registered.
	traces tracestore.Reader
}

// NewAPI creates the API. traces may be nil when the configured sink does
// not persist records.
func NewAPI(logger *slog.Logger, checker *contract.Checker, traces tracestore.Reader) *API {
	if logger == nil {
		panic("httpapi: logger cannot be nil")
	}
	if checker == nil {
		panic("httpapi: checker cannot be nil")
	}

	api := &API{
		Router:  chi.NewRouter(),
		logger:  logger,
		checker: checker,
		traces:  traces,
	}

	api.configureRoutes()
	return api
}

// configureRoutes registers the middleware stack and endpoints.
func (a *API) configureRoutes() {
	a.Router.Use(middleware.RequestID)
	a.Router.Use(middleware.RealIP)
	a.Router.Use(RequestLogger(a.logger))
	a.Router.Use(Metrics)
	// Recoverer sits inside the logger so panics still produce a log line with a status.
	a.Router.Use(Recoverer)
	a.Router.Use(render.SetContentType(render.ContentTypeJSON))

	a.Router.Get("/health", a.handleHealthCheck)

	a.Router.Route("/v1", func(r chi.Router) {
		r.Get("/percentage", a.handlePercentage)
		if a.traces != nil {
			r.Get("/traces", a.handleListTraces)
		}
	})
}

// handleHealthCheck reports that the HTTP server is serving.
func (a *API) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"status": "ok", "contract_mode": a.checker.Mode().String()})
}
