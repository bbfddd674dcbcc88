// Package httpapi exposes the engine operations as a JSON API.
package httpapi

import (
	"github.com/alexanderramin/founderpulse/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Services are the use cases behind the API.
type Services struct {
	Assessments service.AssessmentService
	CheckIns    service.CheckInService
	Burnout     service.BurnoutService
	Actions     service.ActionService
	Progress    service.ProgressService
}

// NewRouter builds the API router. gatherer backs /metrics; nil uses the
// default Prometheus registry.
func NewRouter(svc Services, logger *zap.Logger, gatherer prometheus.Gatherer) *chi.Mux {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	logger = logger.Named("http")

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(LoggingMiddleware(logger))

	h := NewHandlers(svc, logger)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1/users/{userID}", func(r chi.Router) {
		r.Use(JSONContentType)

		r.Post("/assessments", h.SubmitAssessment)
		r.Get("/assessments/latest", h.LatestAssessment)

		r.Put("/checkins/{date}", h.PutCheckIn)
		r.Get("/checkins", h.ListCheckIns)
		r.Get("/trends", h.Trends)

		r.Post("/burnout", h.CalculateBurnout)
		r.Get("/burnout", h.BurnoutHistory)

		r.Post("/actions/generate", h.GenerateActions)
		r.Get("/actions/{date}", h.ActionsForDate)
		r.Post("/actions/{actionID}/complete", h.CompleteAction)

		r.Get("/stats", h.Stats)
	})

	return r
}
