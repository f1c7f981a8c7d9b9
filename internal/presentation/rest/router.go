package rest

import (
	"crypto/tls"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/georgchimion-oss/fraud-scout-lite/pkg/auth"
)

// RouterConfig configures the HTTP router.
type RouterConfig struct {
	// JWTService enables bearer authentication on /api routes when non-nil.
	JWTService *auth.JWTService
	// RateLimitRPS caps /api requests per second. Zero disables limiting.
	RateLimitRPS float64
	// Metrics serves GET /metrics when non-nil.
	Metrics        http.Handler
	RequestTimeout time.Duration
}

// NewRouter builds the chi router serving probes, metrics, and the JSON API.
func NewRouter(h *Handler, health *HealthHandler, cfg RouterConfig, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			r.Use(RateLimitMiddleware(NewRateLimiter(cfg.RateLimitRPS)))
		}
		if cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(cfg.RequestTimeout))
		}
		if cfg.JWTService != nil {
			r.Use(auth.HTTPMiddleware(cfg.JWTService))
		} else {
			logger.Warn("HTTP authentication disabled")
		}

		// requireRole is a no-op when authentication is disabled.
		requireRole := func(roles ...string) func(http.Handler) http.Handler {
			if cfg.JWTService == nil {
				return func(next http.Handler) http.Handler { return next }
			}
			return auth.RequireRoleHTTP(roles...)
		}
		analyst := requireRole(auth.RoleAnalyst, auth.RoleAdmin)

		r.Get("/reference", h.Reference)
		r.Get("/settings", h.GetSettings)
		r.Post("/risk/score", h.PreviewScore)

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", h.ListCompanies)
			r.Get("/{id}", h.GetCompany)
			r.Get("/{id}/assessments", h.ListCompanyAssessments)
			r.With(analyst).Post("/{id}/assessments", h.CreateAssessment)
		})

		r.Route("/assessments/{id}", func(r chi.Router) {
			r.Get("/", h.GetAssessment)
			r.With(analyst).Post("/score", h.ScoreAssessment)
			r.With(requireRole(auth.RoleReviewer, auth.RoleAdmin)).Post("/review", h.ReviewAssessment)
		})

		r.With(requireRole(auth.RoleAdmin)).Post("/admin/reset", h.ResetDemoData)
	})

	return r
}

// NewHTTPServer wraps handler in an http.Server with conservative timeouts.
// A nil tlsConfig serves plain HTTP.
func NewHTTPServer(addr string, handler http.Handler, tlsConfig *tls.Config) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		TLSConfig:         tlsConfig,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
