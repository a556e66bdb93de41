package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/trendcraft/trendcraft-server/internal/app"
)

func SetupRoutes(app *app.Application) *chi.Mux {
	r := chi.NewRouter()

	r.Use(httprate.LimitAll(200, time.Minute))
	r.Use(app.MiddlewareHandler.RequestLogger)
	r.Use(app.MiddlewareHandler.Security)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitAll(100, time.Minute))
		r.Use(app.MiddlewareHandler.Cors)

		r.Get("/health", app.HealthHandler.HandlerHealthCheck)

		r.Post("/analyze", app.AnalyzeHandler.HandlerAnalyzeVideo)

		r.Get("/categories", app.CategoryHandler.HandlerGetCategories)
		r.Get("/predictions", app.PredictionHandler.HandlerGetRecentPredictions)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/metrics", app.DashboardHandler.HandlerGetDashboardMetrics)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/categories/{id}", app.ObservationHandler.HandlerGetCategoryTimeline)
		})
	})

	return r
}
