package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"postalform/internal/adapters/http/health"
	"postalform/internal/adapters/http/postalcode"
	"postalform/internal/config"
	httpErrors "postalform/internal/platform/http"
	"postalform/internal/platform/logger"
	"postalform/internal/platform/metrics"
	platformMiddleware "postalform/internal/platform/middleware"
)

const (
	livenessPath  = "/health/live"
	readinessPath = "/health/ready"
	metricsPath   = "/metrics"
)

type RouterDependencies struct {
	Config            *config.HttpConfig
	Logger            logger.Logger
	PostalCodeHandler *postalcode.Handler
	LivenessHandler   *health.LivenessHandler
	ReadinessHandler  *health.ReadinessHandler
	MetricsProvider   *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	log := deps.Logger
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(log, livenessPath, readinessPath, metricsPath))
	r.Use(platformMiddleware.MetricsMiddleware(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(log))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(httprate.LimitAll(
		cfg.RateLimit.GlobalRequests,
		time.Duration(cfg.RateLimit.GlobalWindow)*time.Second,
	))
	r.Use(httprate.LimitByIP(
		cfg.RateLimit.RequestsPerIP,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	))

	r.NotFound(ErrorHandler(func(w http.ResponseWriter, r *http.Request) error {
		return httpErrors.NewNotFound("resource not found", nil)
	}))
	r.MethodNotAllowed(ErrorHandler(func(w http.ResponseWriter, r *http.Request) error {
		return httpErrors.NewMethodNotAllowed("method not allowed", nil)
	}))

	r.Get(livenessPath, deps.LivenessHandler.Check)
	r.Get(readinessPath, deps.ReadinessHandler.Check)
	r.Handle(metricsPath, deps.MetricsProvider.Handler())

	r.Route("/api/v1", func(apiRouter chi.Router) {
		apiRouter.Route("/postal-codes", func(postalRouter chi.Router) {
			postalRouter.Use(middleware.AllowContentType("application/json"))
			postalRouter.Use(middleware.RequestSize(cfg.Server.MaxBodyBytes))
			postalRouter.Post("/validate", ErrorHandler(deps.PostalCodeHandler.Validate))
			postalRouter.Get("/formats", ErrorHandler(deps.PostalCodeHandler.Formats))
		})
	})

	return r
}
